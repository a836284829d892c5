package paymentmethod

import "context"

type Repository interface {
	// ListAll returns every method, enabled or not.
	ListAll(ctx context.Context) ([]*Method, error)
	// ListAllForUpdate locks all method rows until the transaction on ctx ends.
	ListAllForUpdate(ctx context.Context) ([]*Method, error)
	// SaveAll upserts every method in the slice.
	SaveAll(ctx context.Context, methods []*Method) error
}
