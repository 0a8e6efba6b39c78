package usecase

import "context"

// RegistrationUsecase drives the 5-step business registration dialogue.
// Each call returns the reply text for the sender.
type RegistrationUsecase interface {
	// Start creates a fresh session for sender and returns the first prompt.
	// The router only calls it when the sender has no active session.
	Start(ctx context.Context, sender string) string

	// HandleStep feeds one message into the sender's session: it validates
	// the current step's input, advances or re-prompts, and commits the
	// completed record on the final step. 'cancel' aborts from any step.
	HandleStep(ctx context.Context, sender, body string) string

	// HasSession reports whether sender has a registration in progress.
	HasSession(sender string) bool
}
