package helper

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// ParseDate reads a YYYY-MM-DD value; empty input yields nil.
func ParseDate(field, raw string) (*datatypes.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		// accept full timestamps from clients that send ISO strings
		if t, err = time.Parse(time.RFC3339, raw); err != nil {
			return nil, ErrBadRequest("Invalid " + field + ", expected YYYY-MM-DD")
		}
	}
	d := datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	return &d, nil
}

func FormatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(DateLayout)
	return &s
}

// Today is the current UTC calendar date.
func Today() datatypes.Date {
	now := time.Now().UTC()
	return datatypes.Date(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
}
