package dto

import "time"

// DateRangeDTO - окно дат, уже разобранное из query-параметров.
type DateRangeDTO struct {
	Start time.Time
	End   time.Time
}

type PriceRangeDTO struct {
	Min float64
	Max float64
}
