// Package idempotency guards checkout creation against client retries. The
// key is client-supplied (Idempotency-Key header); when a record is found
// within the TTL the original session is replayed instead of creating a
// second reservation. Store failures degrade to non-idempotent behavior:
// they never fail a checkout.
package idempotency

import (
	"context"
	"time"
)

// TTL bounds how long a retry replays the original checkout session.
const TTL = 15 * time.Minute

// Record is the replayable outcome of a completed checkout call.
type Record struct {
	ReservationID string `json:"reservation_id"`
	SessionID     string `json:"session_id"`
	RedirectURL   string `json:"redirect_url"`
}

type Store interface {
	// Get returns the record for key and whether one exists and is fresh.
	Get(ctx context.Context, key string) (Record, bool, error)
	Put(ctx context.Context, key string, rec Record) error
}
