package domain

// Surveyor represents a field surveyor that can be booked for surveys.
// SurveyorBookingID is the stable upstream booking-account identifier;
// a surveyor with no real account linked carries the zero sentinel and is
// permanently unavailable for every slot.
type Surveyor struct {
	BookingID int64 // upstream surveyor_booking pk; 0 = no account linked
	Name      string
	Region    string
	State     string
	AvatarURL string
}

// IsBookable returns true if the surveyor has a valid booking account.
func (s *Surveyor) IsBookable() bool {
	return s.BookingID > 0
}
