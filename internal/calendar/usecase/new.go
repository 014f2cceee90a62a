package usecase

import (
	noterepo "maxitask/internal/note/repository"
	taskrepo "maxitask/internal/task/repository"
	"maxitask/pkg/datemath"
	"maxitask/pkg/gcalendar"
	"maxitask/pkg/log"
)

// implUseCase is the private implementation of calendar.UseCase. exporter is
// optional: with no calendar integration configured, exports still succeed
// but return no event link.
type implUseCase struct {
	l          log.Logger
	tasks      taskrepo.Repository
	notes      noterepo.Repository
	dateMath   *datemath.Parser
	exporter   *gcalendar.Client
	calendarID string
	timezone   string
}

// New creates a new calendar UseCase instance. exporter may be nil.
func New(
	l log.Logger,
	tasks taskrepo.Repository,
	notes noterepo.Repository,
	dateMath *datemath.Parser,
	exporter *gcalendar.Client,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		tasks:      tasks,
		notes:      notes,
		dateMath:   dateMath,
		exporter:   exporter,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
