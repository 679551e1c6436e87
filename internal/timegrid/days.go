package timegrid

import "strings"

// Canonical weekday ordering. Fixed lookup data, not extensible.
var dayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// MinutesPerDay bounds slot minutes; nothing wraps past midnight.
const MinutesPerDay = 24 * 60

// DayIndex maps a weekday name to its canonical index 0..6. Lookup is
// case-insensitive; anything outside the canonical seven reports ok=false.
func DayIndex(name string) (int, bool) {
	for i, d := range dayNames {
		if strings.EqualFold(d, name) {
			return i, true
		}
	}
	return 0, false
}

// DayName returns the canonical name for index 0..6, or "" out of range.
func DayName(index int) string {
	if index < 0 || index >= len(dayNames) {
		return ""
	}
	return dayNames[index]
}
