package structures

// in this file: slack timestamp parsing functions

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const dtLayout = "2006-01-02 15:04:05"

var errEmptyTS = errors.New("empty timestamp")

// ParseTimestamp parses an archive timestamp ("1534552745.065949", or plain
// "1534552745", or any floating point number of seconds since the epoch) and
// returns the time in UTC.
func ParseTimestamp(ts string) (time.Time, error) {
	const (
		base = 10
		bit  = 64
	)
	sSec, sFrac, found := strings.Cut(ts, ".")
	if sSec == "" {
		return time.Time{}, errEmptyTS
	}
	if !found {
		sFrac = ""
	}
	// the fractional part is micro seconds, zero-padded to six digits.
	if len(sFrac) > 6 {
		sFrac = sFrac[:6]
	}
	sFrac += strings.Repeat("0", 6-len(sFrac))
	t, err := strconv.ParseInt(sSec+sFrac, base, bit)
	if err != nil {
		// not in the sec.micro form, take it as a float (the archive may
		// legitimately hold the timestamp as a JSON number).
		f, ferr := strconv.ParseFloat(ts, bit)
		if ferr != nil {
			return time.Time{}, err
		}
		return time.UnixMicro(int64(f * 1e6)).UTC(), nil
	}
	return time.UnixMicro(t).UTC(), nil
}

// FormatDateTime renders the time in the workbook datetime form
// (YYYY-MM-DD HH:MM:SS).  Lexicographic order of the result matches
// chronological order, which the aggregator sorting relies on.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dtLayout)
}

// DateOf extracts the calendar date (YYYY-MM-DD) from a workbook datetime
// string.  Returns an empty string if the value is too short to contain one.
func DateOf(datetime string) string {
	if len(datetime) < len("2006-01-02") {
		return ""
	}
	return datetime[:len("2006-01-02")]
}
