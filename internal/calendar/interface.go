package calendar

import "context"

// UseCase projects tasks and notes onto a month grid and exports scheduled
// tasks to an external calendar.
type UseCase interface {
	Month(ctx context.Context, year, month int) (MonthOutput, error)
	ExportTask(ctx context.Context, id string) (ExportOutput, error)
}
