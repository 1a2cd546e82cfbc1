package types

import "time"

// Period - закрытый интервал дат [Start, End].
type Period struct {
	Start time.Time
	End   time.Time
}

func NewPeriod(start, end time.Time) Period {
	return Period{Start: start, End: end}
}

// Valid: конец периода не раньше начала, совпадение границ допустимо.
func (p Period) Valid() bool {
	return !p.End.Before(p.Start)
}
