package impl

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"dirbot/internal/domain/entity"
	"dirbot/internal/infra/session"
	mockRepo "dirbot/internal/mocks/repository"
	"dirbot/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// routerServiceFixtures wires the router over real registration and directory
// services so classification is tested end to end against the repo boundary.
type routerServiceFixtures struct {
	service      usecase.RouterUsecase
	store        *session.Store
	businessRepo *mockRepo.MockBusinessRepository
}

func createTestRouterService(t *testing.T) routerServiceFixtures {
	store := session.NewStore()
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	logger := newTestLogger()
	cfg := newTestConfig()

	registration := NewRegistrationService(store, businessRepo, logger)
	directory := NewDirectoryService(businessRepo, nil, cfg, logger)
	service := NewRouterService(registration, directory, cfg, logger)

	return routerServiceFixtures{
		service:      service,
		store:        store,
		businessRepo: businessRepo,
	}
}

func TestRouterService_EmptyBody(t *testing.T) {
	fx := createTestRouterService(t)

	assert.Equal(t, welcomeText, fx.service.HandleMessage(context.Background(), "whatsapp:+15550001111", ""))
	assert.Equal(t, welcomeText, fx.service.HandleMessage(context.Background(), "whatsapp:+15550001111", "   "))
}

func TestRouterService_MenuCommands(t *testing.T) {
	fx := createTestRouterService(t)

	ctx := context.Background()
	sender := "whatsapp:+15550001111"

	assert.Equal(t, helpText, fx.service.HandleMessage(ctx, sender, "help"))
	assert.Equal(t, helpText, fx.service.HandleMessage(ctx, sender, "START"))
	assert.Equal(t, helpText, fx.service.HandleMessage(ctx, sender, " Menu "))
}

func TestRouterService_Contact(t *testing.T) {
	fx := createTestRouterService(t)

	reply := fx.service.HandleMessage(context.Background(), "whatsapp:+15550001111", "contact")
	assert.Equal(t, fmt.Sprintf(contactTextFmt, "support@example.com"), reply)
}

func TestRouterService_RegisterStartsSession(t *testing.T) {
	fx := createTestRouterService(t)

	reply := fx.service.HandleMessage(context.Background(), "whatsapp:+15550001111", "Register")
	assert.Equal(t, startPromptText, reply)
	assert.True(t, fx.store.Has("whatsapp:+15550001111"))
}

func TestRouterService_SessionConsumesCommands(t *testing.T) {
	fx := createTestRouterService(t)

	ctx := context.Background()
	sender := "whatsapp:+15550001111"

	fx.service.HandleMessage(ctx, sender, "register")

	// Inside a dialogue, "help" is the business name, not a command.
	reply := fx.service.HandleMessage(ctx, sender, "help")
	assert.Equal(t, fmt.Sprintf(promptAddressFmt, "help"), reply)
}

func TestRouterService_SessionsAreIndependent(t *testing.T) {
	fx := createTestRouterService(t)

	ctx := context.Background()

	fx.service.HandleMessage(ctx, "whatsapp:+15550001111", "register")

	// A different sender still gets the command vocabulary.
	reply := fx.service.HandleMessage(ctx, "whatsapp:+15550002222", "help")
	assert.Equal(t, helpText, reply)
}

func TestRouterService_Stats(t *testing.T) {
	fx := createTestRouterService(t)

	ctx := context.Background()

	fx.businessRepo.EXPECT().Count(ctx).Return(0, errors.New("connection refused"))

	reply := fx.service.HandleMessage(ctx, "whatsapp:+15550001111", "stats")
	assert.Equal(t, statsFallbackText, reply)
}

func TestRouterService_NearPrefix(t *testing.T) {
	fx := createTestRouterService(t)

	ctx := context.Background()

	fx.businessRepo.EXPECT().
		SearchByLocation(ctx, "downtown", 10).
		Return(nil, nil)

	reply := fx.service.HandleMessage(ctx, "whatsapp:+15550001111", "Near  Downtown")
	assert.Equal(t, fmt.Sprintf(noLocationResultsFmt, "downtown"), reply)
}

func TestRouterService_FallbackSearch(t *testing.T) {
	fx := createTestRouterService(t)

	ctx := context.Background()

	fx.businessRepo.EXPECT().
		SearchByKeywordOrName(ctx, "pizza delivery", 10).
		Return(nil, nil)

	reply := fx.service.HandleMessage(ctx, "whatsapp:+15550001111", "Pizza Delivery")
	assert.Equal(t, fmt.Sprintf(noResultsFmt, "pizza delivery"), reply)
}

func TestRouterService_PanicProducesApology(t *testing.T) {
	fx := createTestRouterService(t)

	ctx := context.Background()

	fx.businessRepo.EXPECT().
		SearchByKeywordOrName(ctx, "pizza", 10).
		RunAndReturn(func(context.Context, string, int) ([]*entity.Business, error) {
			panic("boom")
		})

	reply := fx.service.HandleMessage(ctx, "whatsapp:+15550001111", "pizza")
	assert.Equal(t, apologyText, reply)
}

func TestTruncateReply(t *testing.T) {
	short := "hello"
	assert.Equal(t, short, truncateReply(short))

	long := strings.Repeat("a", maxReplyLength+100)
	truncated := truncateReply(long)
	assert.Equal(t, maxReplyLength, len(truncated)-len("…"))
	assert.True(t, strings.HasSuffix(truncated, "…"))
}

func TestTruncateReply_RuneBoundary(t *testing.T) {
	long := strings.Repeat("é", maxReplyLength)
	truncated := truncateReply(long)
	assert.True(t, utf8.ValidString(truncated))
	assert.LessOrEqual(t, len(truncated), maxReplyLength+len("…"))
}
