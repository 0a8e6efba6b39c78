package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"dirbot/internal/domain/entity"
	"dirbot/internal/domain/repository"
	"dirbot/internal/infra/session"
	"dirbot/internal/usecase"
)

const minNameLength = 2
const minAddressLength = 10
const minKeywords = 2

type registrationService struct {
	store  *session.Store
	repo   repository.BusinessRepository
	logger *slog.Logger
}

// NewRegistrationService creates the registration dialogue service. It is the
// sole owner of the session store.
func NewRegistrationService(store *session.Store, repo repository.BusinessRepository, logger *slog.Logger) usecase.RegistrationUsecase {
	return &registrationService{
		store:  store,
		repo:   repo,
		logger: logger,
	}
}

// Start begins a fresh registration at the name step.
func (s *registrationService) Start(_ context.Context, sender string) string {
	s.store.Put(entity.NewRegistrationSession(sender))

	return startPromptText
}

// HasSession reports whether sender has a registration in progress.
func (s *registrationService) HasSession(sender string) bool {
	return s.store.Has(sender)
}

// HandleStep feeds one message into the sender's dialogue. Rejected input is
// discarded and the sender stays on the same step; accepted input is stored
// in the draft and the dialogue advances.
func (s *registrationService) HandleStep(ctx context.Context, sender, body string) string {
	sess, ok := s.store.Get(sender)
	if !ok {
		return registerHintText
	}

	input := strings.TrimSpace(body)

	// Cancellation works from every step.
	if strings.EqualFold(input, "cancel") {
		s.store.Delete(sender)

		return cancelledText
	}

	switch sess.Step {
	case entity.StepName:
		if len(input) < minNameLength {
			return warnNameTooShort
		}
		sess.Draft.Name = input

		return s.advance(sess, fmt.Sprintf(promptAddressFmt, input))

	case entity.StepAddress:
		if len(input) < minAddressLength {
			return warnAddressTooShort
		}
		sess.Draft.Address = input

		return s.advance(sess, promptPhoneText)

	case entity.StepPhone:
		if !validatePhone(input) {
			return warnPhoneInvalid
		}
		sess.Draft.Phone = input

		return s.advance(sess, promptEmailText)

	case entity.StepEmail:
		if strings.EqualFold(input, "skip") {
			sess.Draft.Email = entity.EmailNotProvided
		} else if validateEmail(input) {
			sess.Draft.Email = input
		} else {
			return warnEmailInvalid
		}

		return s.advance(sess, promptKeywordsText)

	case entity.StepKeywords:
		keywords := parseKeywords(input)
		if len(keywords) < minKeywords {
			return warnKeywordsTooFew
		}
		sess.Draft.Keywords = keywords

		return s.commit(ctx, sess)

	default:
		// Unreachable: sessions are only created at StepName and only
		// advanced through Next.
		s.store.Delete(sender)

		return registerHintText
	}
}

// advance moves the session to the next step and returns the prompt for it.
func (s *registrationService) advance(sess *entity.RegistrationSession, prompt string) string {
	next, ok := sess.Step.Next()
	if ok {
		sess.Step = next
		s.store.Put(sess)
	}

	return prompt
}

// commit builds the business record from the draft, inserts it, and discards
// the session whether or not the insert succeeded. There is no retry path; a
// failed commit means registering again from scratch.
func (s *registrationService) commit(ctx context.Context, sess *entity.RegistrationSession) string {
	business := &entity.Business{
		Address:      sess.Draft.Address,
		Phone:        sess.Draft.Phone,
		Email:        sess.Draft.Email,
		Keywords:     sess.Draft.Keywords,
		RegisteredBy: sess.Sender,
		Status:       entity.StatusActive,
	}
	business.SetName(sess.Draft.Name)

	id, err := s.repo.Insert(ctx, business)
	s.store.Delete(sess.Sender)

	if err != nil {
		s.logger.Error("Failed to complete registration",
			slog.String("sender", sess.Sender),
			slog.String("name", business.Name),
			slog.Any("error", err),
		)

		return registrationFailedText
	}

	s.logger.Info("New business registered",
		slog.String("id", id),
		slog.String("name", business.Name),
		slog.String("sender", sess.Sender),
	)

	return fmt.Sprintf(confirmationFmt,
		business.Name,
		business.Address,
		business.Phone,
		business.Email,
		strings.Join(business.Keywords, ", "),
		business.Keywords[0],
		id,
	)
}
