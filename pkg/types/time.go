package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrEmptyTime = errors.New("дата не может быть пустой")

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTime принимает RFC3339, "2006-01-02 15:04:05" и "2006-01-02".
// Дата без времени означает полночь UTC.
func ParseTime(raw string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("не удалось разобрать дату %q", raw)
}

// Time - time.Time, который в JSON принимает и "2024-01-10", и RFC3339.
type Time struct {
	time.Time
}

func NewTime(t time.Time) Time { return Time{Time: t} }

// UnmarshalJSON: null оставляет нулевое время (его ловит `required`),
// а пустая строка и "0001-01-01" - ошибка, иначе в базу попадет нулевая дата.
func (t *Time) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		t.Time = time.Time{}
		return nil
	}
	s := strings.Trim(string(b), `"`)
	if s == "" {
		return ErrEmptyTime
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	if parsed.IsZero() {
		return ErrEmptyTime
	}
	t.Time = parsed
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return t.Time.MarshalJSON()
}
