package competition

import "context"

// Repository describes competition reads needed by use cases.
type Repository interface {
	ListCompetitions(ctx context.Context) ([]Competition, error)
}
