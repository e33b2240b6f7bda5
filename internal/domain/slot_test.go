package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDensity(t *testing.T) {
	testCases := []struct {
		name  string
		ratio float64
		want  MonthDensity
	}{
		{name: "zero ratio has no indicator", ratio: 0, want: DensityNone},
		{name: "negative ratio has no indicator", ratio: -0.5, want: DensityNone},
		{name: "light load is green", ratio: 0.2, want: DensityGreen},
		{name: "lower orange bound", ratio: 0.33, want: DensityOrange},
		{name: "mid load is orange", ratio: 0.5, want: DensityOrange},
		{name: "lower red bound", ratio: 0.66, want: DensityRed},
		{name: "heavy load is red", ratio: 0.9, want: DensityRed},
		{name: "full day", ratio: 1.0, want: DensityRedFull},
		{name: "over capacity stays full", ratio: 1.5, want: DensityRedFull},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyDensity(tc.ratio))
		})
	}
}

func TestClassifyDensity_MonotoneInRatio(t *testing.T) {
	// Рост загрузки никогда не понижает уровень плотности
	prev := ClassifyDensity(0)
	for ratio := 0.05; ratio <= 1.2; ratio += 0.05 {
		cur := ClassifyDensity(ratio)
		assert.GreaterOrEqual(t, cur.Rank(), prev.Rank(), "ratio=%f", ratio)
		prev = cur
	}
}

func TestMonthDensity_Dots(t *testing.T) {
	assert.Nil(t, DensityNone.Dots())
	assert.Equal(t, []string{"green"}, DensityGreen.Dots())
	assert.Equal(t, []string{"orange"}, DensityOrange.Dots())
	assert.Equal(t, []string{"red"}, DensityRed.Dots())
	assert.Equal(t, []string{"red", "red"}, DensityRedFull.Dots())
}

func TestWeekUsage(t *testing.T) {
	assert.False(t, WeekUsage{Used: 2, Capacity: 3}.IsFull())
	assert.True(t, WeekUsage{Used: 3, Capacity: 3}.IsFull())
	assert.InDelta(t, 2.0/3.0, WeekUsage{Used: 2, Capacity: 3}.Ratio(), 1e-9)
	assert.Zero(t, WeekUsage{Used: 2, Capacity: 0}.Ratio())
}

func TestBookingLifecycleFlags(t *testing.T) {
	b := Booking{}
	assert.True(t, b.CanBeCancelled())
	assert.True(t, b.CanBeRescheduled())
	assert.True(t, b.CanBeCompleted())

	b.IsCompleted = true
	assert.False(t, b.CanBeCancelled())
	assert.False(t, b.CanBeRescheduled())
	assert.False(t, b.CanBeCompleted())
}

func TestSurveyorIsBookable(t *testing.T) {
	assert.True(t, (&Surveyor{BookingID: 12}).IsBookable())
	assert.False(t, (&Surveyor{BookingID: 0}).IsBookable())
	assert.False(t, (&Surveyor{BookingID: -1}).IsBookable())
}
