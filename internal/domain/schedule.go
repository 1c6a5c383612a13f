package domain

import "time"

// MaxMonthDay caps the day of month of monthly schedules so that every month has it.
// A schedule started on the 31st therefore settles on the 28th from then on.
const MaxMonthDay = 28

// Advance returns the next payment date after from. The result is always later than from.
func Advance(from time.Time, f Frequency) time.Time {
	from = DateOf(from)
	switch f {
	case Weekly:
		return from.AddDate(0, 0, 7)
	case Biweekly:
		return from.AddDate(0, 0, 14)
	default:
		year, month, day := from.Date()
		if day > MaxMonthDay {
			day = MaxMonthDay
		}
		return time.Date(year, month+1, day, 0, 0, 0, 0, time.UTC)
	}
}

// DateOf truncates t to a calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type RunStatus string

const (
	RunExecuted RunStatus = "executed"
	RunFailed   RunStatus = "failed"
	RunSkipped  RunStatus = "skipped"
)

type RunDetail struct {
	ScheduleID      string     `json:"schedule_id"`
	Status          RunStatus  `json:"status"`
	TxHash          string     `json:"tx_hash,omitempty"`
	NextPaymentDate *time.Time `json:"next_payment_date,omitempty"`
	Error           string     `json:"error,omitempty"`
}

// RunReport summarizes one pass over the due schedules.
type RunReport struct {
	AsOf     time.Time   `json:"as_of"`
	Executed int         `json:"executed"`
	Failed   int         `json:"failed"`
	Skipped  int         `json:"skipped"`
	Details  []RunDetail `json:"details"`
}

func (r *RunReport) Add(d RunDetail) {
	switch d.Status {
	case RunExecuted:
		r.Executed++
	case RunFailed:
		r.Failed++
	default:
		r.Skipped++
	}
	r.Details = append(r.Details, d)
}
