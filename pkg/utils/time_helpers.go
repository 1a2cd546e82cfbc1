package utils

import (
	"time"

	"rental-system/pkg/constants"
	"rental-system/pkg/types"
)

func ParseTime(raw string) (time.Time, error) {
	return types.ParseTime(raw)
}

// EndOfDay для дат без времени сдвигает конец окна на 23:59:59.
func EndOfDay(raw string, t time.Time) time.Time {
	if len(raw) == len(constants.DateLayout) {
		return t.Add(24*time.Hour - time.Nanosecond)
	}
	return t
}
