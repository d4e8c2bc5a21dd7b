package estimator

import "github.com/andresuchdata/replenish/internal/domain"

// Window returns the inclusive history range of referenceDays days ending the
// day before currentDate. The current day is excluded since its sales may be
// incomplete.
func Window(currentDate domain.Date, referenceDays int) (start, end domain.Date) {
	end = currentDate.AddDays(-1)
	start = end.AddDays(-(referenceDays - 1))
	return start, end
}
