package impl

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"dirbot/internal/domain/entity"
	"dirbot/internal/domain/repository"
	mockRepo "dirbot/internal/mocks/repository"
	mockService "dirbot/internal/mocks/service"
	"dirbot/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// directoryServiceFixtures holds all test dependencies for directory tests.
type directoryServiceFixtures struct {
	service      usecase.DirectoryUsecase
	businessRepo *mockRepo.MockBusinessRepository
}

func createTestDirectoryService(t *testing.T) directoryServiceFixtures {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	service := NewDirectoryService(businessRepo, nil, newTestConfig(), newTestLogger())

	return directoryServiceFixtures{
		service:      service,
		businessRepo: businessRepo,
	}
}

func newBusiness(name string, registeredAt time.Time, keywords ...string) *entity.Business {
	business := &entity.Business{
		Address:      "12 Test Street, Downtown",
		Phone:        "+1234567890",
		Email:        entity.EmailNotProvided,
		Keywords:     keywords,
		RegisteredAt: registeredAt,
		Status:       entity.StatusActive,
	}
	business.SetName(name)

	return business
}

func TestDirectoryService_Search_RanksByRelevanceThenRecency(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	fullText := newBusiness("Downtown Diner", base.Add(48*time.Hour), "food", "diner")
	nameMatch := newBusiness("Pizza Palace", base.Add(24*time.Hour), "food")
	keywordOld := newBusiness("Mario's Place", base, "pizza", "italian")
	keywordNew := newBusiness("Luigi's Corner", base.Add(time.Hour), "pizza", "delivery")

	fx.businessRepo.EXPECT().
		SearchByKeywordOrName(ctx, "pizza", 10).
		Return([]*entity.Business{fullText, nameMatch, keywordOld, keywordNew}, nil)

	reply := fx.service.Search(ctx, "Pizza")
	require.Contains(t, reply, "Found 4 business(es) for 'pizza'")

	first := indexOf(t, reply, "Luigi's Corner")
	second := indexOf(t, reply, "Mario's Place")
	third := indexOf(t, reply, "Pizza Palace")
	fourth := indexOf(t, reply, "Downtown Diner")
	assert.Less(t, first, second)
	assert.Less(t, second, third)
	assert.Less(t, third, fourth)
}

func TestDirectoryService_Search_DeduplicatesByName(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	registeredAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	keywordHit := newBusiness("Mario's Pizza", registeredAt, "pizza")
	nameHit := newBusiness("Mario's Pizza", registeredAt, "pizza")

	fx.businessRepo.EXPECT().
		SearchByKeywordOrName(ctx, "pizza", 10).
		Return([]*entity.Business{keywordHit, nameHit}, nil)

	reply := fx.service.Search(ctx, "pizza")
	assert.Contains(t, reply, "Found 1 business(es) for 'pizza'")
}

func TestDirectoryService_Search_CapsRenderedRecords(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	results := make([]*entity.Business, 0, 8)
	for i := range 8 {
		results = append(results, newBusiness(
			fmt.Sprintf("Hotel %d", i),
			base.Add(time.Duration(i)*time.Hour),
			"hotel",
		))
	}

	fx.businessRepo.EXPECT().
		SearchByKeywordOrName(ctx, "hotel", 10).
		Return(results, nil)

	reply := fx.service.Search(ctx, "hotel")
	assert.Contains(t, reply, "Found 8 business(es)")
	assert.Contains(t, reply, "... and 3 more results.")
	assert.NotContains(t, reply, "6. *")
}

func TestDirectoryService_Search_RendersKeywordsAndProvidedEmail(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	registeredAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	withEmail := newBusiness("Tech Fix", registeredAt, "repair", "tech", "service", "electronics")
	withEmail.Email = "hello@techfix.com"

	fx.businessRepo.EXPECT().
		SearchByKeywordOrName(ctx, "repair", 10).
		Return([]*entity.Business{withEmail}, nil)

	reply := fx.service.Search(ctx, "repair")
	assert.Contains(t, reply, "🏷️ repair, tech, service\n")
	assert.NotContains(t, reply, "electronics")
	assert.Contains(t, reply, "📧 hello@techfix.com")
}

func TestDirectoryService_Search_NoResults(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.businessRepo.EXPECT().
		SearchByKeywordOrName(ctx, "unicorn", 10).
		Return(nil, nil)

	reply := fx.service.Search(ctx, "unicorn")
	assert.Equal(t, fmt.Sprintf(noResultsFmt, "unicorn"), reply)
}

func TestDirectoryService_Search_RepositoryError(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.businessRepo.EXPECT().
		SearchByKeywordOrName(ctx, "pizza", 10).
		Return(nil, errors.New("connection refused"))

	reply := fx.service.Search(ctx, "pizza")
	assert.Equal(t, searchErrorText, reply)
}

func TestDirectoryService_SearchByLocation(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()
	registeredAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	business := newBusiness("Harbour Cafe", registeredAt, "cafe", "coffee")

	fx.businessRepo.EXPECT().
		SearchByLocation(ctx, "downtown", 10).
		Return([]*entity.Business{business}, nil)

	reply := fx.service.SearchByLocation(ctx, "Downtown")
	assert.Contains(t, reply, "Found 1 business(es) near 'downtown'")
	assert.Contains(t, reply, "Harbour Cafe")
	assert.NotContains(t, reply, "🏷️")
	assert.Contains(t, reply, locationTipsText)
}

func TestDirectoryService_SearchByLocation_NoResults(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.businessRepo.EXPECT().
		SearchByLocation(ctx, "moon base", 10).
		Return(nil, nil)

	reply := fx.service.SearchByLocation(ctx, "moon base")
	assert.Equal(t, fmt.Sprintf(noLocationResultsFmt, "moon base"), reply)
}

func TestDirectoryService_SearchByLocation_RepositoryError(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.businessRepo.EXPECT().
		SearchByLocation(ctx, "downtown", 10).
		Return(nil, errors.New("connection refused"))

	reply := fx.service.SearchByLocation(ctx, "downtown")
	assert.Equal(t, locationErrorText, reply)
}

func TestDirectoryService_Stats(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.businessRepo.EXPECT().Count(ctx).Return(12, nil)
	fx.businessRepo.EXPECT().Recent(ctx, 3).Return([]repository.RecentBusiness{
		{Name: "Mario's Pizza", RegisteredAt: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)},
		{Name: "Tech Fix", RegisteredAt: time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)},
	}, nil)
	fx.businessRepo.EXPECT().PopularKeywords(ctx, 5).Return([]repository.KeywordCount{
		{Keyword: "pizza", Count: 4},
		{Keyword: "hotel", Count: 2},
	}, nil)

	reply := fx.service.Stats(ctx)
	assert.Contains(t, reply, "Total Businesses: 12")
	assert.Contains(t, reply, "• Mario's Pizza (Aug 30)")
	assert.Contains(t, reply, "• pizza (4)")
	assert.Contains(t, reply, "Send 'register' to add your business FREE!")
}

func TestDirectoryService_Stats_CountError(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.businessRepo.EXPECT().Count(ctx).Return(0, errors.New("connection refused"))

	reply := fx.service.Stats(ctx)
	assert.Equal(t, statsFallbackText, reply)
}

func TestDirectoryService_Stats_PartialDegradation(t *testing.T) {
	fx := createTestDirectoryService(t)

	ctx := context.Background()

	fx.businessRepo.EXPECT().Count(ctx).Return(5, nil)
	fx.businessRepo.EXPECT().Recent(ctx, 3).Return(nil, errors.New("connection refused"))
	fx.businessRepo.EXPECT().PopularKeywords(ctx, 5).Return(nil, errors.New("connection refused"))

	reply := fx.service.Stats(ctx)
	assert.Contains(t, reply, "Total Businesses: 5")
	assert.NotContains(t, reply, "Recently Added")
	assert.NotContains(t, reply, "Popular Categories")
}

func TestDirectoryService_Stats_CacheHit(t *testing.T) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	cache := mockService.NewMockReplyCache(t)
	service := NewDirectoryService(businessRepo, cache, newTestConfig(), newTestLogger())

	ctx := context.Background()

	cache.EXPECT().Get(ctx, statsCacheKey).Return("cached stats", true, nil)

	reply := service.Stats(ctx)
	assert.Equal(t, "cached stats", reply)
}

func TestDirectoryService_Stats_CacheMissStoresReply(t *testing.T) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	cache := mockService.NewMockReplyCache(t)
	service := NewDirectoryService(businessRepo, cache, newTestConfig(), newTestLogger())

	ctx := context.Background()

	cache.EXPECT().Get(ctx, statsCacheKey).Return("", false, nil)
	businessRepo.EXPECT().Count(ctx).Return(3, nil)
	businessRepo.EXPECT().Recent(ctx, 3).Return(nil, nil)
	businessRepo.EXPECT().PopularKeywords(ctx, 5).Return(nil, nil)
	cache.EXPECT().Set(ctx, statsCacheKey, mock.AnythingOfType("string"), defaultStatsTTL).Return(nil)

	reply := service.Stats(ctx)
	assert.Contains(t, reply, "Total Businesses: 3")
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()

	idx := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, idx, 0, "expected reply to contain %q", needle)

	return idx
}
