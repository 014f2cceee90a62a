package usecase

import (
	"context"
	"errors"
	"time"

	"maxitask/internal/calendar"
	"maxitask/internal/model"
	taskrepo "maxitask/internal/task/repository"
	"maxitask/pkg/datemath"
	"maxitask/pkg/gcalendar"
)

// defaultExportHour is used when a scheduled task has no time of day.
const defaultExportHour = 9

func (uc *implUseCase) Month(ctx context.Context, year, month int) (calendar.MonthOutput, error) {
	if month < 1 || month > 12 {
		return calendar.MonthOutput{}, calendar.ErrInvalidMonth
	}

	tasks, err := uc.tasks.ListTasks(ctx)
	if err != nil {
		return calendar.MonthOutput{}, err
	}
	notes, err := uc.notes.ListNotes(ctx)
	if err != nil {
		return calendar.MonthOutput{}, err
	}

	tasksByDate := make(map[string][]model.Task)
	for _, t := range tasks {
		if t.Date != "" {
			tasksByDate[t.Date] = append(tasksByDate[t.Date], t)
		}
	}
	notesByDate := make(map[string][]model.Note)
	for _, n := range notes {
		if n.Date != "" {
			notesByDate[n.Date] = append(notesByDate[n.Date], n)
		}
	}

	today := uc.dateMath.Today()
	grid := uc.dateMath.MonthGrid(year, time.Month(month))

	days := make([]calendar.Day, 0, datemath.GridSize)
	for _, d := range grid {
		date := d.Format(datemath.DateFormat)
		days = append(days, calendar.Day{
			Date:    date,
			InMonth: d.Month() == time.Month(month) && d.Year() == year,
			Today:   date == today,
			Tasks:   tasksByDate[date],
			Notes:   notesByDate[date],
		})
	}

	return calendar.MonthOutput{Year: year, Month: month, Days: days}, nil
}

// ExportTask pushes a scheduled task to Google Calendar as a one-hour event.
// Without a configured exporter the call still succeeds, just without a link.
func (uc *implUseCase) ExportTask(ctx context.Context, id string) (calendar.ExportOutput, error) {
	t, err := uc.tasks.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, taskrepo.ErrNotFound) {
			return calendar.ExportOutput{}, calendar.ErrTaskNotFound
		}
		return calendar.ExportOutput{}, err
	}
	if t.Date == "" {
		return calendar.ExportOutput{}, calendar.ErrNotScheduled
	}

	if uc.exporter == nil {
		uc.l.Warnf(ctx, "calendar export requested without integration configured, task %s", t.ID)
		return calendar.ExportOutput{Task: t}, nil
	}

	start, err := uc.eventStart(t)
	if err != nil {
		return calendar.ExportOutput{}, err
	}

	event, err := uc.exporter.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.calendarID,
		Summary:    t.Title,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Timezone:   uc.timezone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportTask CreateEvent: %v", err)
		return calendar.ExportOutput{}, err
	}

	uc.l.Infof(ctx, "exported task %s as event %s", t.ID, event.ID)
	return calendar.ExportOutput{Task: t, EventID: event.ID, Link: event.HtmlLink}, nil
}

func (uc *implUseCase) eventStart(t model.Task) (time.Time, error) {
	day, err := uc.dateMath.ParseDate(t.Date)
	if err != nil {
		return time.Time{}, err
	}
	if t.Time == "" {
		return day.Add(defaultExportHour * time.Hour), nil
	}
	tod, err := time.Parse("15:04", t.Time)
	if err != nil {
		return day.Add(defaultExportHour * time.Hour), nil
	}
	return day.Add(time.Duration(tod.Hour())*time.Hour + time.Duration(tod.Minute())*time.Minute), nil
}
