package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"maxitask/internal/model"
	"maxitask/internal/task"
)

// Timeline projects uncompleted timed tasks into one-hour display events.
// Tasks in the Work category show as "work", everything else as "personal".
func (uc *implUseCase) Timeline(ctx context.Context) (task.TimelineOutput, error) {
	all, err := uc.repo.ListTasks(ctx)
	if err != nil {
		return task.TimelineOutput{}, err
	}

	events := make([]model.TimelineEvent, 0)
	for _, t := range all {
		if t.Time == "" || t.Completed {
			continue
		}

		end, ok := addHour(t.Time)
		if !ok {
			uc.l.Warnf(ctx, "uc.Timeline: task %s has unusable time %q, skipping", t.ID, t.Time)
			continue
		}

		eventType := "personal"
		if t.Category == "Work" {
			eventType = "work"
		}

		events = append(events, model.TimelineEvent{
			ID:        t.ID,
			Title:     t.Title,
			StartTime: t.Time,
			EndTime:   end,
			Type:      eventType,
		})
	}

	return task.TimelineOutput{Events: events}, nil
}

// addHour returns start + 1h as "HH:MM", wrapping past midnight.
func addHour(hhmm string) (string, bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return "", false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return "", false
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil || mins < 0 || mins > 59 {
		return "", false
	}

	return fmt.Sprintf("%02d:%02d", (hours+1)%24, mins), true
}
