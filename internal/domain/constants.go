package domain

// Capacity constraint: a surveyor takes at most this many surveys per day,
// booked and completed both counted.
const MaxBookingsPerDay = 3

// WeekDays is the length of the week view window (Monday through Saturday).
const WeekDays = 6

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxRemarksLength = 500
)

// SurveyTypes перечень типов обследований, принимаемых upstream API
var SurveyTypes = []string{
	"INITIAL",
	"FINAL",
	"JOINT",
	"RECTIFICATION",
}

// MalaysiaRegions используется при генерации fallback-профилей сюрвейеров
var MalaysiaRegions = []string{
	"Central", "Northern", "Southern", "East Coast", "East Malaysia",
}

// MalaysiaStates используется при генерации fallback-профилей сюрвейеров
var MalaysiaStates = []string{
	"Johor", "Kedah", "Kelantan", "Melaka", "Negeri Sembilan", "Pahang",
	"Perak", "Perlis", "Pulau Pinang", "Sabah", "Sarawak", "Selangor",
	"Terengganu", "Kuala Lumpur", "Putrajaya", "Labuan",
}
