package domain

// SlotStatus is the derived state of a (surveyor, date, slot) cell.
// It is never stored: it is recomputed from the booking set on every read.
type SlotStatus string

const (
	StatusAvailable   SlotStatus = "available"
	StatusBooked      SlotStatus = "booked"
	StatusCompleted   SlotStatus = "completed"
	StatusUnavailable SlotStatus = "unavailable"
)

// WeekUsage is the derived per-surveyor, per-date load for the week view.
type WeekUsage struct {
	Used     int
	Capacity int // always MaxBookingsPerDay
}

// IsFull returns true if the surveyor has no remaining capacity on that day.
func (u WeekUsage) IsFull() bool {
	return u.Used >= u.Capacity
}

// Ratio returns the usage ratio (0 when capacity is zero).
func (u WeekUsage) Ratio() float64 {
	if u.Capacity == 0 {
		return 0
	}
	return float64(u.Used) / float64(u.Capacity)
}

// MonthDensity classifies aggregate booking pressure for one calendar date
// across all bookable surveyors.
type MonthDensity string

const (
	DensityNone    MonthDensity = ""
	DensityGreen   MonthDensity = "green"
	DensityOrange  MonthDensity = "orange"
	DensityRed     MonthDensity = "red"
	DensityRedFull MonthDensity = "red_full" // fully booked, rendered with two dots
)

// ClassifyDensity maps a bookings/capacity ratio to a density level.
// A zero ratio yields no indicator at all.
func ClassifyDensity(ratio float64) MonthDensity {
	switch {
	case ratio <= 0:
		return DensityNone
	case ratio >= 1:
		return DensityRedFull
	case ratio >= 0.66:
		return DensityRed
	case ratio >= 0.33:
		return DensityOrange
	default:
		return DensityGreen
	}
}

// Rank orders density levels by severity. Adding a booking on a date never
// decreases that date's rank.
func (d MonthDensity) Rank() int {
	switch d {
	case DensityGreen:
		return 1
	case DensityOrange:
		return 2
	case DensityRed:
		return 3
	case DensityRedFull:
		return 4
	default:
		return 0
	}
}

// Dots returns the dot colours the month grid renders for this level.
func (d MonthDensity) Dots() []string {
	switch d {
	case DensityGreen:
		return []string{"green"}
	case DensityOrange:
		return []string{"orange"}
	case DensityRed:
		return []string{"red"}
	case DensityRedFull:
		return []string{"red", "red"}
	default:
		return nil
	}
}
