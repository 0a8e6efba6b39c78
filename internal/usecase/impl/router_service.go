package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"dirbot/config"
	"dirbot/internal/usecase"
)

// maxReplyLength defensively caps reply text below the transport's message
// size limit.
const maxReplyLength = 1500

type routerService struct {
	registration usecase.RegistrationUsecase
	directory    usecase.DirectoryUsecase
	logger       *slog.Logger
	supportEmail string
}

// NewRouterService creates the command router.
func NewRouterService(registration usecase.RegistrationUsecase, directory usecase.DirectoryUsecase, cfg *config.Config, logger *slog.Logger) usecase.RouterUsecase {
	supportEmail := cfg.Directory.SupportEmail
	if supportEmail == "" {
		supportEmail = "support@yourdomain.com"
	}

	return &routerService{
		registration: registration,
		directory:    directory,
		logger:       logger,
		supportEmail: supportEmail,
	}
}

// HandleMessage classifies the message and dispatches it. A well-formed reply
// is produced even when a downstream service panics; the transport never sees
// an error from this path.
func (s *routerService) HandleMessage(ctx context.Context, sender, body string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Message handling panicked",
				slog.String("sender", sender),
				slog.Any("panic", r),
			)
			reply = apologyText
		}
	}()

	s.logger.Info("Received message",
		slog.String("sender", sender),
		slog.Int("length", len(body)),
	)

	return truncateReply(s.route(ctx, sender, strings.TrimSpace(body)))
}

// route applies the classification order: an active session consumes every
// message first, then the fixed command vocabulary, then search.
func (s *routerService) route(ctx context.Context, sender, body string) string {
	if s.registration.HasSession(sender) {
		return s.registration.HandleStep(ctx, sender, body)
	}

	if body == "" {
		return welcomeText
	}

	lower := strings.ToLower(body)

	switch lower {
	case "help", "start", "menu":
		return helpText
	case "register":
		return s.registration.Start(ctx, sender)
	case "contact":
		return fmt.Sprintf(contactTextFmt, s.supportEmail)
	case "stats":
		return s.directory.Stats(ctx)
	}

	if rest, ok := strings.CutPrefix(lower, "near "); ok {
		return s.directory.SearchByLocation(ctx, strings.TrimSpace(rest))
	}

	return s.directory.Search(ctx, lower)
}

// truncateReply trims oversized replies at a rune boundary.
func truncateReply(reply string) string {
	if len(reply) <= maxReplyLength {
		return reply
	}

	cut := maxReplyLength
	for cut > 0 && !utf8.RuneStart(reply[cut]) {
		cut--
	}

	return reply[:cut] + "…"
}
