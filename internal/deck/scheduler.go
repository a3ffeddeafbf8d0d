package deck

import "time"

// TickKey identifies one scheduled tick of one timer activation. A tick whose
// Generation no longer matches its timer has been cancelled.
type TickKey struct {
	Slide      int
	Generation uint64
}

// Scheduler arranges for a tick to be delivered back to
// Presentation.HandleTick (or TimerBank.Tick) after the given delay.
// Each call schedules exactly one delivery; the bank reschedules after every
// tick it accepts.
type Scheduler interface {
	Schedule(key TickKey, after time.Duration)
}

// Scheduled is a pending delivery recorded by QueueScheduler.
type Scheduled struct {
	Key   TickKey
	After time.Duration
}

// QueueScheduler records schedule requests so the host event loop can turn
// them into its own timers. It is not safe for concurrent use.
type QueueScheduler struct {
	pending []Scheduled
}

// NewQueueScheduler creates an empty queue.
func NewQueueScheduler() *QueueScheduler {
	return &QueueScheduler{}
}

func (q *QueueScheduler) Schedule(key TickKey, after time.Duration) {
	q.pending = append(q.pending, Scheduled{Key: key, After: after})
}

// Drain returns and forgets everything scheduled since the last drain.
func (q *QueueScheduler) Drain() []Scheduled {
	out := q.pending
	q.pending = nil
	return out
}

// Len is the number of undrained requests.
func (q *QueueScheduler) Len() int {
	return len(q.pending)
}
