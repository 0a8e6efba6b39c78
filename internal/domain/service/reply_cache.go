// Package service defines narrow contracts for supporting infrastructure.
package service

import (
	"context"
	"time"
)

// ReplyCache stores rendered reply text for a short time so repeated
// commands do not hit the catalog store. Implementations must treat a miss
// as (value "", found false, err nil).
type ReplyCache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
