package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"dirbot/config"
	"dirbot/internal/domain/entity"
	"dirbot/internal/domain/repository"
	"dirbot/internal/domain/service"
	"dirbot/internal/usecase"
)

// Relevance tiers, highest first: exact keyword match beats a name substring
// match beats any other (full text) match. Recency breaks ties within a tier.
const (
	tierKeywordExact  = 3
	tierNameSubstring = 2
	tierFullText      = 1
)

const (
	statsRecentCount   = 3
	statsKeywordCount  = 5
	statsCacheKey      = "dirbot:reply:stats"
	defaultStatsTTL    = time.Minute
	maxRenderedKeyword = 3
)

type directoryService struct {
	repo        repository.BusinessRepository
	cache       service.ReplyCache
	logger      *slog.Logger
	searchLimit int
	renderLimit int
	statsTTL    time.Duration
}

// NewDirectoryService creates the search and statistics presenter. cache may
// be nil, which disables reply caching.
func NewDirectoryService(repo repository.BusinessRepository, cache service.ReplyCache, cfg *config.Config, logger *slog.Logger) usecase.DirectoryUsecase {
	statsTTL := defaultStatsTTL
	if cfg.Redis != nil && cfg.Redis.StatsTTL > 0 {
		statsTTL = cfg.Redis.StatsTTL
	}

	return &directoryService{
		repo:        repo,
		cache:       cache,
		logger:      logger,
		searchLimit: cfg.Directory.SearchLimit,
		renderLimit: cfg.Directory.RenderLimit,
		statsTTL:    statsTTL,
	}
}

// Search runs the free-text keyword query, de-duplicates by business name,
// ranks by relevance tier then recency, and renders a bounded reply.
func (s *directoryService) Search(ctx context.Context, query string) string {
	query = strings.ToLower(strings.TrimSpace(query))

	results, err := s.repo.SearchByKeywordOrName(ctx, query, s.searchLimit)
	if err != nil {
		s.logger.Error("Search failed", slog.String("query", query), slog.Any("error", err))

		return searchErrorText
	}

	results = dedupeByName(results)
	if len(results) == 0 {
		return fmt.Sprintf(noResultsFmt, query)
	}

	slices.SortStableFunc(results, func(a, b *entity.Business) int {
		if ta, tb := relevanceTier(query, a), relevanceTier(query, b); ta != tb {
			return cmp.Compare(tb, ta)
		}

		return b.RegisteredAt.Compare(a.RegisteredAt)
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, searchFoundFmt, len(results), query)
	s.renderResults(&sb, results, true)
	sb.WriteString(searchTipsText)

	return sb.String()
}

// SearchByLocation renders businesses whose address contains the location
// string, newest first.
func (s *directoryService) SearchByLocation(ctx context.Context, location string) string {
	location = strings.ToLower(strings.TrimSpace(location))

	results, err := s.repo.SearchByLocation(ctx, location, s.searchLimit)
	if err != nil {
		s.logger.Error("Location search failed", slog.String("location", location), slog.Any("error", err))

		return locationErrorText
	}

	if len(results) == 0 {
		return fmt.Sprintf(noLocationResultsFmt, location)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, locationFoundFmt, len(results), location)
	s.renderResults(&sb, results, false)
	sb.WriteString(locationTipsText)

	return sb.String()
}

// Stats renders directory statistics. Partial backend failures reduce the
// message instead of failing it; a total count failure falls back to a fixed
// growth blurb.
func (s *directoryService) Stats(ctx context.Context) string {
	if s.cache != nil {
		if cached, found, err := s.cache.Get(ctx, statsCacheKey); err != nil {
			s.logger.Warn("Stats cache read failed", slog.Any("error", err))
		} else if found {
			return cached
		}
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count businesses", slog.Any("error", err))

		return statsFallbackText
	}

	var sb strings.Builder
	sb.WriteString("📊 *Directory Statistics*\n\n")
	fmt.Fprintf(&sb, "🏢 Total Businesses: %d\n\n", count)

	recent, err := s.repo.Recent(ctx, statsRecentCount)
	if err != nil {
		s.logger.Warn("Failed to load recent businesses", slog.Any("error", err))
	} else if len(recent) > 0 {
		sb.WriteString("🆕 *Recently Added:*\n")
		for _, business := range recent {
			fmt.Fprintf(&sb, "• %s (%s)\n", business.Name, business.RegisteredAt.Format("Jan 02"))
		}
	}

	popular, err := s.repo.PopularKeywords(ctx, statsKeywordCount)
	if err != nil {
		s.logger.Warn("Failed to load popular keywords", slog.Any("error", err))
	} else if len(popular) > 0 {
		sb.WriteString("\n🔥 *Popular Categories:*\n")
		for _, keyword := range popular {
			fmt.Fprintf(&sb, "• %s (%d)\n", keyword.Keyword, keyword.Count)
		}
	}

	sb.WriteString("\n💡 Send 'register' to add your business FREE!")
	reply := sb.String()

	if s.cache != nil {
		if err := s.cache.Set(ctx, statsCacheKey, reply, s.statsTTL); err != nil {
			s.logger.Warn("Stats cache write failed", slog.Any("error", err))
		}
	}

	return reply
}

// renderResults writes at most renderLimit records, with an overflow note
// when more were fetched. Keywords are rendered for keyword search only;
// email only when the owner provided one.
func (s *directoryService) renderResults(sb *strings.Builder, results []*entity.Business, withKeywords bool) {
	shown := results
	if len(shown) > s.renderLimit {
		shown = shown[:s.renderLimit]
	}

	for i, business := range shown {
		fmt.Fprintf(sb, "%d. *%s*\n", i+1, business.Name)
		fmt.Fprintf(sb, "📍 %s\n", business.Address)
		fmt.Fprintf(sb, "📞 %s\n", business.Phone)
		if withKeywords && len(business.Keywords) > 0 {
			keywords := business.Keywords
			if len(keywords) > maxRenderedKeyword {
				keywords = keywords[:maxRenderedKeyword]
			}
			fmt.Fprintf(sb, "🏷️ %s\n", strings.Join(keywords, ", "))
		}
		if business.Email != "" && business.Email != entity.EmailNotProvided {
			fmt.Fprintf(sb, "📧 %s\n", business.Email)
		}
		sb.WriteString("\n")
	}

	if len(results) > s.renderLimit {
		fmt.Fprintf(sb, moreResultsFmt, len(results)-s.renderLimit)
	}
}

// relevanceTier buckets a result for ranking before the recency tie-break.
func relevanceTier(query string, business *entity.Business) int {
	if slices.Contains(business.Keywords, query) {
		return tierKeywordExact
	}
	if strings.Contains(business.NameLower, query) {
		return tierNameSubstring
	}

	return tierFullText
}

// dedupeByName keeps the first occurrence of each business name. Backends
// that issue keyword and name matches as separate queries return overlapping
// sets.
func dedupeByName(results []*entity.Business) []*entity.Business {
	seen := make(map[string]struct{}, len(results))
	unique := results[:0]
	for _, business := range results {
		if _, ok := seen[business.Name]; ok {
			continue
		}
		seen[business.Name] = struct{}{}
		unique = append(unique, business)
	}

	return unique
}
