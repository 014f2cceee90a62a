package datemath

import "time"

// GridSize is the number of cells in a rendered month: 6 weeks of 7 days,
// padded with leading and trailing days from the adjacent months.
const GridSize = 42

// MonthGrid returns the 42 consecutive days covering the given month,
// starting on the Sunday on or before the 1st.
func (p *Parser) MonthGrid(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, p.location)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]time.Time, GridSize)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}
