package usecase

import "context"

// DirectoryUsecase queries the catalog and renders bounded, human-readable
// reply text. Store failures degrade to friendly fallback messages; no
// method returns an error.
type DirectoryUsecase interface {
	// Search runs a free-text keyword query and renders the ranked results.
	Search(ctx context.Context, query string) string

	// SearchByLocation renders businesses whose address contains location.
	SearchByLocation(ctx context.Context, location string) string

	// Stats renders directory statistics: total count, recent registrations
	// and popular keywords.
	Stats(ctx context.Context) string
}
