package assistant

import "context"

// UseCase drives the conversational assistant. Process is serialized: a
// second call while one is in flight fails with ErrBusy rather than queue.
type UseCase interface {
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
}
