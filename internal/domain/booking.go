package domain

import "time"

// SlotKey is the natural key of a booking: exactly one booking may occupy
// a given (date, surveyor, start label) triple at a time.
type SlotKey struct {
	DateISO           string // "2006-01-02"
	SurveyorBookingID int64
	StartLabel        string // display label, e.g. "10:00 AM"
}

// Booking represents a scheduled survey occupying one time slot
// for one surveyor on one date.
type Booking struct {
	Idx               string // canonical upstream identifier ("SVY...")
	SiteIdx           string // upstream site identifier ("ST...")
	SiteName          string
	SurveyorBookingID int64
	DateISO           string
	StartLabel        string // "10:00 AM"
	EndLabel          string // "11:00 AM"
	WireSlot          string // upstream form, "10:00-11:00"
	SurveyType        string
	BDRemarks         string

	// Completion is monotone: once set it never reverts, and the fields
	// below are written exactly once, at completion time.
	IsCompleted    bool
	SurveyRemarks  string
	SurveyPhotoRef string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Key returns the booking's natural key.
func (b *Booking) Key() SlotKey {
	return SlotKey{
		DateISO:           b.DateISO,
		SurveyorBookingID: b.SurveyorBookingID,
		StartLabel:        b.StartLabel,
	}
}

// CanBeCancelled returns true if the booking may still be cancelled.
// Completed bookings are locked.
func (b *Booking) CanBeCancelled() bool {
	return !b.IsCompleted
}

// CanBeRescheduled returns true if the booking may be moved to another slot.
func (b *Booking) CanBeRescheduled() bool {
	return !b.IsCompleted
}

// CanBeCompleted returns true if the booking may be marked completed.
func (b *Booking) CanBeCompleted() bool {
	return !b.IsCompleted
}
