package inspection

import "context"

// Repository is the record-store contract for crew inspections: one insert
// per submission and a full select for the reporting view. No retries or
// batching; failures surface verbatim to the caller.
type Repository interface {
	Create(ctx context.Context, rec *Inspection) error
	// ListAll returns every inspection ordered by created_at descending.
	ListAll(ctx context.Context) ([]Inspection, error)
}
