package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/lmaznek/go-reddit-bulk/pkg/types"
)

// TimeSentinel is returned for absent or falsy raw timestamps in both
// time formats.
const TimeSentinel = "NaN"

// localeLayout is the absolute layout used by TimeFormatLocale, rendered
// in UTC.
const localeLayout = "Monday, January 2, 2006 at 15:04:05"

// FormatTimestamp renders a raw Unix timestamp according to the given
// format, relative to now for the concise form. A zero or negative
// timestamp yields TimeSentinel.
func FormatTimestamp(ts float64, format types.TimeFormat, now time.Time) string {
	if ts <= 0 {
		return TimeSentinel
	}

	t := time.Unix(int64(ts), 0).UTC()
	if format == types.TimeFormatLocale {
		return t.Format(localeLayout)
	}
	return conciseAge(now.UTC().Sub(t))
}

// FormatEdited renders the edited field: "false" when the item was never
// edited, an old-style edit with no timestamp keeps the bare "true", and
// a modern edit is rendered like any other timestamp.
func FormatEdited(e types.Edited, format types.TimeFormat, now time.Time) string {
	if !e.IsEdited {
		return "false"
	}
	if e.Timestamp <= 0 {
		return "true"
	}
	return FormatTimestamp(e.Timestamp, format, now)
}

// conciseAge buckets an age into a human-relative label. Boundaries sit
// at 60s, 3600s, 86400s, 7d, 30d, and 365d: an age of exactly 3600s is
// "1 hour ago", 59s is "59 seconds ago".
func conciseAge(age time.Duration) string {
	secs := int64(age.Seconds())
	if secs < 0 {
		secs = 0
	}

	const (
		minute = 60
		hour   = 3600
		day    = 86400
		week   = 7 * day
		month  = 30 * day
		year   = 365 * day
	)

	switch {
	case secs < minute:
		return plural(secs, "second")
	case secs < hour:
		return plural(secs/minute, "minute")
	case secs < day:
		return plural(secs/hour, "hour")
	case secs < week:
		return plural(secs/day, "day")
	case secs < month:
		return plural(secs/week, "week")
	case secs < year:
		return plural(secs/month, "month")
	default:
		return plural(secs/year, "year")
	}
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// StripTracking truncates a media URL at its first query-string
// delimiter, dropping Reddit's tracking parameters.
func StripTracking(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		return url[:i]
	}
	return url
}
