package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveExplicitDateWinsOverWeekday(t *testing.T) {
	spec := Resolve(Source{
		Date:      strPtr("2024-05-01"),
		Weekday:   intPtr(3),
		StartTime: "19:00",
	})

	assert.Equal(t, OneOff, spec.Kind)
	assert.Equal(t, "2024-05-01", spec.Date)
	assert.Equal(t, TimeOfDay{19, 0}, spec.Start)
}

func TestResolveWeekdayList(t *testing.T) {
	spec := Resolve(Source{Weekdays: []int{3, 1, 3, 9, -2}, StartTime: "20:00"})

	assert.Equal(t, WeeklyMultiple, spec.Kind)
	assert.Equal(t, []int{3, 1}, spec.Weekdays, "invalid and duplicate entries are dropped")
}

func TestResolveSingleEntryListCollapses(t *testing.T) {
	spec := Resolve(Source{Weekdays: []int{5}, StartTime: "20:00"})

	assert.Equal(t, WeeklySingle, spec.Kind)
	assert.Equal(t, 5, spec.Weekday)
}

func TestResolveOutOfRangeWeekday(t *testing.T) {
	assert.Equal(t, Unscheduled, Resolve(Source{Weekday: intPtr(7)}).Kind)
	assert.Equal(t, Unscheduled, Resolve(Source{Weekday: intPtr(-1)}).Kind)
	assert.Equal(t, Unscheduled, Resolve(Source{Weekdays: []int{8, -3}}).Kind)
}

func TestResolveLegacyDayNames(t *testing.T) {
	tests := []struct {
		name    string
		weekday int
	}{
		{"miércoles", 3},
		{"miercoles", 3},
		{"MIÉRCOLES", 3},
		{" sábado ", 6},
		{"sabado", 6},
		{"domingo", 0},
		{"lunes", 1},
	}

	for _, tt := range tests {
		spec := Resolve(Source{WeekdayName: tt.name, StartTime: "19:30"})
		assert.Equal(t, WeeklySingle, spec.Kind, "name %q", tt.name)
		assert.Equal(t, tt.weekday, spec.Weekday, "name %q", tt.name)
	}
}

func TestResolveUnknownDayName(t *testing.T) {
	assert.Equal(t, Unscheduled, Resolve(Source{WeekdayName: "someday"}).Kind)
}

func TestResolveNumericWeekdayWinsOverName(t *testing.T) {
	spec := Resolve(Source{Weekday: intPtr(1), WeekdayName: "viernes"})

	assert.Equal(t, WeeklySingle, spec.Kind)
	assert.Equal(t, 1, spec.Weekday)
}

func TestResolveEmptySource(t *testing.T) {
	assert.Equal(t, Unscheduled, Resolve(Source{}).Kind)
}

func TestResolveBlankDateFallsThrough(t *testing.T) {
	spec := Resolve(Source{Date: strPtr("  "), Weekday: intPtr(2), StartTime: "18:00"})

	assert.Equal(t, WeeklySingle, spec.Kind)
	assert.Equal(t, 2, spec.Weekday)
}

func TestResolveMissingStartTimeUsesDefault(t *testing.T) {
	spec := Resolve(Source{Weekday: intPtr(4)})

	assert.Equal(t, DefaultTimeOfDay(), spec.Start)
}
