package timeutil

import "time"

// DisplayLayout renders dates as "<day> <Month> <year>".
const DisplayLayout = "2 January 2006"

// FromEpoch converts Unix epoch seconds to a UTC time. Zero, negative, and
// 1970-or-earlier timestamps are placeholders upstream and report false.
func FromEpoch(sec int64) (time.Time, bool) {
	if sec <= 0 {
		return time.Time{}, false
	}
	t := time.Unix(sec, 0).UTC()
	if t.Year() <= 1970 {
		return time.Time{}, false
	}
	return t, true
}

// FormatDisplay formats t with DisplayLayout in loc (UTC when nil).
func FormatDisplay(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DisplayLayout)
}

// ResolveLocation returns a location for a tz string, or nil if empty or invalid.
func ResolveLocation(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}
