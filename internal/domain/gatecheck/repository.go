package gatecheck

import "context"

// Repository mirrors the record-store contract used for crew inspections:
// insert-one and select-all, nothing else.
type Repository interface {
	Create(ctx context.Context, rec *GateCheck) error
	// ListAll returns every gate check ordered by created_at descending.
	ListAll(ctx context.Context) ([]GateCheck, error)
}
