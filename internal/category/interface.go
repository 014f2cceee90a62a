package category

import "context"

// UseCase manages the category set and the active category. Categories are
// shared by tasks and notes; the active one is the default for new items.
type UseCase interface {
	List(ctx context.Context) ([]string, error)
	Active(ctx context.Context) (string, error)
	Add(ctx context.Context, name string) (AddOutput, error)
	SetActive(ctx context.Context, name string) error
}
