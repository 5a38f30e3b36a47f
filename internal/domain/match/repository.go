package match

import "context"

type ListFilter struct {
	Status Status
}

// Repository describes match persistence needs from use cases.
// Lists are ordered by match date, newest first.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Match, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
	Create(ctx context.Context, m Match) error
	Update(ctx context.Context, m Match) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
