package usecase

import "context"

// RouterUsecase classifies every inbound message and produces the reply text.
// It never fails: any error or panic in the underlying services is converted
// into a generic apology so the transport always receives a well-formed body.
type RouterUsecase interface {
	HandleMessage(ctx context.Context, sender, body string) string
}
