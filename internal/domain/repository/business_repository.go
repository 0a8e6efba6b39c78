// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"dirbot/internal/domain/entity"
)

// RecentBusiness is the slim projection used by the statistics view.
type RecentBusiness struct {
	Name         string
	RegisteredAt time.Time
}

// KeywordCount pairs a keyword with its occurrence count across active records.
type KeywordCount struct {
	Keyword string
	Count   int64
}

// BusinessRepository defines the standard operations for catalog persistence.
// Every query only considers records with status "active". Ranking, tie-break
// and de-duplication of search results belong to the presenter, not here; an
// implementation only has to return the candidate set.
type BusinessRepository interface {
	// Insert persists a new business as a single transaction, assigning the
	// server timestamp and active status. It returns the assigned id.
	Insert(ctx context.Context, business *entity.Business) (string, error)

	// Count returns the number of active businesses.
	Count(ctx context.Context) (int64, error)

	// Recent returns up to n most recently registered businesses, newest first.
	Recent(ctx context.Context, n int) ([]RecentBusiness, error)

	// PopularKeywords returns up to n keywords by descending occurrence count,
	// ties broken alphabetically.
	PopularKeywords(ctx context.Context, n int) ([]KeywordCount, error)

	// SearchByKeywordOrName returns businesses matching the lowercased query by
	// exact keyword, name substring or full text, capped at limit.
	SearchByKeywordOrName(ctx context.Context, query string, limit int) ([]*entity.Business, error)

	// SearchByLocation returns businesses whose address contains text
	// case-insensitively, newest first, capped at limit.
	SearchByLocation(ctx context.Context, text string, limit int) ([]*entity.Business, error)
}
