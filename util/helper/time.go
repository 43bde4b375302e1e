package helper_util

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date, e.g. 2011-12-31.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatDate renders t as an ISO calendar date.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
