// Package timegrid defines the fixed sequence of bookable time slots in a
// survey day and the conversions between the 12-hour display labels and the
// 24-hour "HH:MM-HH:MM" wire form used by the upstream survey API.
//
// All conversions fail safe: malformed input yields the input unchanged or a
// documented default, never a panic, because the results feed grid rendering
// that must survive bad upstream data.
package timegrid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aimanhzq/Survey-BookingService/pkg/types"
)

// DayTimes is the fixed ordered sequence of bookable one-hour slots.
// The order is total; adjacent labels are contiguous one-hour windows and
// the day never wraps past the last slot.
var DayTimes = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
}

// defaultWireStart is the fallback for unparseable display labels.
const defaultWireStart = "10:00"

// SlotCount returns the number of slots in a day.
func SlotCount() int {
	return len(DayTimes)
}

// SlotIndex returns the position of a label in the day sequence, or -1.
func SlotIndex(label string) int {
	for i, t := range DayTimes {
		if t == label {
			return i
		}
	}
	return -1
}

// Contains reports whether the label is one of the day's slots.
func Contains(label string) bool {
	return SlotIndex(label) >= 0
}

// ScanFrom returns the day's other slots in scan order for rescheduling:
// forward from the given label, wrapping to the start of the sequence,
// excluding the label itself. An unknown label yields an empty slice.
func ScanFrom(label string) []string {
	idx := SlotIndex(label)
	if idx < 0 {
		return nil
	}
	out := make([]string, 0, len(DayTimes)-1)
	for step := 1; step < len(DayTimes); step++ {
		out = append(out, DayTimes[(idx+step)%len(DayTimes)])
	}
	return out
}

// NextHour returns the display label one hour after the given one, using
// 12-hour clock arithmetic (11:00 AM -> 12:00 PM, 12:00 PM -> 1:00 PM).
// Malformed input is returned unchanged.
func NextHour(label string) string {
	h, min, ap, ok := parseLabel(label)
	if !ok {
		return label
	}

	h++
	if h == 12 && ap == "AM" {
		ap = "PM"
	} else if h == 12 && ap == "PM" {
		ap = "AM"
	} else if h == 13 {
		h = 1
	}

	return fmt.Sprintf("%d:%s %s", h, min, ap)
}

// ToAmPm converts a 24-hour "HH:MM" time to its 12-hour display label.
// Malformed input is returned unchanged.
func ToAmPm(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return hhmm
	}
	min := "00"
	if len(parts) == 2 && parts[1] != "" {
		min = parts[1]
	}

	ap := "AM"
	if h >= 12 {
		ap = "PM"
	}
	if h == 0 {
		h = 12
	}
	if h > 12 {
		h -= 12
	}
	return fmt.Sprintf("%d:%s %s", h, min, ap)
}

// FromAmPm converts a 12-hour display label to 24-hour "HH:MM".
// Malformed input yields the documented default "10:00".
func FromAmPm(label string) string {
	h, min, ap, ok := parseLabel(label)
	if !ok {
		return defaultWireStart
	}
	if ap == "AM" {
		if h == 12 {
			h = 0
		}
	} else if h != 12 {
		h += 12
	}
	return fmt.Sprintf("%02d:%s", h, min)
}

// ToWire converts a slot's start label to the upstream "HH:MM-HH:MM" form,
// covering the slot's fixed one-hour window.
func ToWire(label string) string {
	start := FromAmPm(label)
	end, err := types.TimeString(start).AddMinutes(60)
	if err != nil {
		end = types.TimeString(start)
	}
	return fmt.Sprintf("%s-%s", start, end)
}

// WireStart returns the display label of a wire slot's start time.
// A wire value without a "-" separator converts as a bare time.
func WireStart(wire string) string {
	start, _, _ := strings.Cut(wire, "-")
	return ToAmPm(start)
}

// WireEnd returns the display label of a wire slot's end time.
// A wire value without an end falls back to one hour after the start.
func WireEnd(wire string) string {
	start, end, found := strings.Cut(wire, "-")
	if !found || end == "" {
		return NextHour(ToAmPm(start))
	}
	return ToAmPm(end)
}

// parseLabel splits "H:MM AM" into parts. ok is false on malformed input.
func parseLabel(label string) (h int, min string, ap string, ok bool) {
	timePart, apPart, found := strings.Cut(label, " ")
	if !found || (apPart != "AM" && apPart != "PM") {
		return 0, "", "", false
	}
	hStr, mStr, found := strings.Cut(timePart, ":")
	if !found || len(mStr) != 2 {
		return 0, "", "", false
	}
	h, err := strconv.Atoi(hStr)
	if err != nil || h < 1 || h > 12 {
		return 0, "", "", false
	}
	if _, err := strconv.Atoi(mStr); err != nil {
		return 0, "", "", false
	}
	return h, mStr, apPart, true
}
