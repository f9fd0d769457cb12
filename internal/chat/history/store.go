// Package history keeps per-session chat context for the assistant.
// Sessions are bounded both in length and lifetime so the store never
// grows without limit.
package history

import "context"

// MaxEntries is the hard cap per session; older entries are dropped.
const MaxEntries = 10

type Store interface {
	Append(ctx context.Context, sessionID string, entry string) error

	// Recent returns up to n entries, oldest first.
	Recent(ctx context.Context, sessionID string, n int) ([]string, error)
}
