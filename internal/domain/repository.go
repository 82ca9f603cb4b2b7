package domain

import "context"

// ModelClient defines the interface for the hosted chat/search model. The
// service is treated as opaque text-in/text-out; structure is recovered from
// the reply by the extractor, never enforced by the transport.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// HistoryRepository defines the interface for per-session search history.
// Entries are append-only and returned in insertion order.
type HistoryRepository interface {
	Append(ctx context.Context, sessionID string, entry HistoryEntry) error
	All(ctx context.Context, sessionID string) ([]HistoryEntry, error)
}
