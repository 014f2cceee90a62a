package datemath_test

import (
	"testing"
	"time"

	"maxitask/pkg/datemath"
)

func TestParser_Parse(t *testing.T) {
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Monday 2024-06-10
	base := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		in   string
		want string
	}{
		{"today", "2024-06-10"},
		{"tomorrow", "2024-06-11"},
		{"yesterday", "2024-06-09"},
		{"in 3 days", "2024-06-13"},
		{"in 2 weeks", "2024-06-24"},
		{"in 1 month", "2024-07-10"},
		{"next friday", "2024-06-14"},
		{"next monday", "2024-06-17"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := p.Parse(tc.in, base)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Format(datemath.DateFormat) != tc.want {
				t.Errorf("Parse(%q) = %s, want %s", tc.in, got.Format(datemath.DateFormat), tc.want)
			}
		})
	}

	t.Run("unknown phrase", func(t *testing.T) {
		got, err := p.Parse("sometime soon", base)
		if err == nil {
			t.Errorf("expected error for unknown phrase")
		}
		if got.Format(datemath.DateFormat) != "2024-06-10" {
			t.Errorf("fallback should be start of base day, got %s", got)
		}
	})
}

func TestParser_MonthGrid(t *testing.T) {
	p, _ := datemath.NewParser("UTC")

	// June 2024 starts on a Saturday.
	grid := p.MonthGrid(2024, time.June)
	if len(grid) != datemath.GridSize {
		t.Fatalf("expected %d cells, got %d", datemath.GridSize, len(grid))
	}
	if grid[0].Weekday() != time.Sunday {
		t.Errorf("grid should start on Sunday, got %s", grid[0].Weekday())
	}
	if grid[0].Format(datemath.DateFormat) != "2024-05-26" {
		t.Errorf("unexpected first cell: %s", grid[0].Format(datemath.DateFormat))
	}
	if grid[6].Format(datemath.DateFormat) != "2024-06-01" {
		t.Errorf("unexpected first-of-month cell: %s", grid[6].Format(datemath.DateFormat))
	}
	for i := 1; i < len(grid); i++ {
		if !grid[i].Equal(grid[i-1].AddDate(0, 0, 1)) {
			t.Fatalf("grid not consecutive at index %d", i)
		}
	}
}
