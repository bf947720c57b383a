package converter

import (
	"time"

	"github.com/golang-module/carbon/v2"
)

const clockLayout = "03:04 PM"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return carbon.Parse(t.UTC().Format(time.RFC3339), carbon.UTC).ToRfc3339String(carbon.UTC)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}

	return formatTime(*t)
}

func formatClock(t time.Time) string {
	return carbon.Parse(t.UTC().Format(time.RFC3339), carbon.UTC).Layout(clockLayout, carbon.UTC)
}

func parseTime(value string) (time.Time, error) {
	if len(value) == 0 {
		return time.Time{}, nil
	}

	c := carbon.Parse(value, carbon.UTC)
	if c.Error != nil {
		return time.Time{}, c.Error
	}

	return c.StdTime(), nil
}

func parseOptionalTime(value string) (*time.Time, error) {
	if len(value) == 0 {
		return nil, nil
	}

	t, err := parseTime(value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
