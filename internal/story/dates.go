package story

import (
	"fmt"
	"hash/fnv"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	longDateLayout = "January 02, 2006"
)

// DeriveStartDate maps a premise onto a date within ±180 days of now.
// The offset comes from a hash of the premise text, so the same premise
// on the same calendar day always lands on the same start date.
func DeriveStartDate(premise string, now time.Time) time.Time {
	h := fnv.New64a()
	h.Write([]byte(premise))
	offset := int(h.Sum64()%365) - 180
	return now.AddDate(0, 0, offset)
}

// ParseStartDate parses an explicit YYYY-MM-DD start date.
func ParseStartDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start date must be YYYY-MM-DD: %v", ErrInvalidParams, err)
	}
	return t, nil
}

// FormatLongDate renders a date like "July 21, 2025".
func FormatLongDate(t time.Time) string {
	return t.Format(longDateLayout)
}

// FormatDayDate renders a date with its weekday, like "July 21, 2025 (Monday)".
func FormatDayDate(t time.Time) string {
	return fmt.Sprintf("%s (%s)", t.Format(longDateLayout), t.Weekday())
}
