package deck

import (
	"sort"
	"time"
)

// Timer is the countdown owned by TimerBank for one slide.
type Timer struct {
	Slide            int
	DurationSeconds  int
	RemainingSeconds int
	Running          bool

	// generation identifies the live tick source; bumping it cancels any
	// tick already scheduled.
	generation uint64
}

// TimerUpdate is the display state published after every change to a timer.
type TimerUpdate struct {
	Slide            int
	RemainingSeconds int
	DurationSeconds  int
	Running          bool
	Display          string
	Severity         Severity
}

// PulseRequest asks the display host for a transient highlight.
type PulseRequest struct {
	Count  int
	Period time.Duration
	Decay  time.Duration
}

// CompleteSignal is raised once when a countdown reaches zero.
type CompleteSignal struct {
	Slide int
	Pulse PulseRequest
}

// TimerBank owns one optional countdown per slide, keyed by slide index.
// Operations on an unregistered slide are silent no-ops.
type TimerBank struct {
	timers     map[int]*Timer
	order      []int
	scheduler  Scheduler
	generation uint64

	ticks     hookSet[TimerUpdate]
	completes hookSet[CompleteSignal]
}

// NewTimerBank creates an empty bank that schedules ticks on s.
func NewTimerBank(s Scheduler) *TimerBank {
	return &TimerBank{
		timers:    make(map[int]*Timer),
		scheduler: s,
	}
}

// Register creates the timer for a slide. Non-positive durations and
// already registered slides are ignored.
func (b *TimerBank) Register(slide, durationSeconds int) {
	if durationSeconds <= 0 {
		return
	}
	if _, exists := b.timers[slide]; exists {
		return
	}
	b.timers[slide] = &Timer{
		Slide:            slide,
		DurationSeconds:  durationSeconds,
		RemainingSeconds: durationSeconds,
	}
	b.order = append(b.order, slide)
	sort.Ints(b.order)
}

// clear drops every timer. Generations keep counting so ticks scheduled for
// a dropped timer can never match a new one.
func (b *TimerBank) clear() {
	b.timers = make(map[int]*Timer)
	b.order = nil
}

func (b *TimerBank) nextGeneration() uint64 {
	b.generation++
	return b.generation
}

// Has reports whether a timer is registered for slide.
func (b *TimerBank) Has(slide int) bool {
	_, ok := b.timers[slide]
	return ok
}

// Slides returns the registered slide indices in ascending order.
func (b *TimerBank) Slides() []int {
	return append([]int(nil), b.order...)
}

// Start resets the slide's countdown to its full duration and begins
// ticking. Any countdown already in flight for that slide is cancelled first.
func (b *TimerBank) Start(slide int) {
	t, ok := b.timers[slide]
	if !ok {
		return
	}
	t.generation = b.nextGeneration()
	t.Running = true
	t.RemainingSeconds = t.DurationSeconds
	b.publish(t)
	b.schedule(t)
}

// Resume continues a paused countdown from where it stopped. A finished
// timer stays finished until Start is called.
func (b *TimerBank) Resume(slide int) {
	t, ok := b.timers[slide]
	if !ok || t.Running || t.RemainingSeconds == 0 {
		return
	}
	t.generation = b.nextGeneration()
	t.Running = true
	b.publish(t)
	b.schedule(t)
}

// Toggle pauses a running timer or resumes a paused one.
func (b *TimerBank) Toggle(slide int) {
	t, ok := b.timers[slide]
	if !ok {
		return
	}
	if t.Running {
		b.Pause(slide)
		return
	}
	b.Resume(slide)
}

// Pause stops the countdown and keeps the remaining time.
func (b *TimerBank) Pause(slide int) {
	t, ok := b.timers[slide]
	if !ok || !t.Running {
		return
	}
	t.Running = false
	t.generation = b.nextGeneration()
	b.publish(t)
}

// PauseAll pauses every registered timer.
func (b *TimerBank) PauseAll() {
	for _, slide := range b.order {
		b.Pause(slide)
	}
}

// Reset pauses the timer and restores its full duration without restarting.
func (b *TimerBank) Reset(slide int) {
	t, ok := b.timers[slide]
	if !ok {
		return
	}
	b.Pause(slide)
	t.RemainingSeconds = t.DurationSeconds
	b.publish(t)
}

// Tick delivers one scheduled tick. Ticks for unregistered slides, stopped
// timers or stale generations are dropped.
func (b *TimerBank) Tick(key TickKey) {
	t, ok := b.timers[key.Slide]
	if !ok || !t.Running || key.Generation != t.generation {
		return
	}
	if t.RemainingSeconds > 0 {
		t.RemainingSeconds--
	}
	if t.RemainingSeconds == 0 {
		t.Running = false
		t.generation = b.nextGeneration()
		b.publish(t)
		b.completes.emit(CompleteSignal{
			Slide: t.Slide,
			Pulse: PulseRequest{Count: PulseCount, Period: PulsePeriod, Decay: PulseDecay},
		})
		return
	}
	b.publish(t)
	b.schedule(t)
}

// Snapshot returns the current display state of a slide's timer.
func (b *TimerBank) Snapshot(slide int) (TimerUpdate, bool) {
	t, ok := b.timers[slide]
	if !ok {
		return TimerUpdate{}, false
	}
	return t.update(), true
}

// OnTick subscribes to display updates.
func (b *TimerBank) OnTick(fn func(TimerUpdate)) func() {
	return b.ticks.add(fn)
}

// OnComplete subscribes to completion signals.
func (b *TimerBank) OnComplete(fn func(CompleteSignal)) func() {
	return b.completes.add(fn)
}

func (b *TimerBank) schedule(t *Timer) {
	if b.scheduler == nil {
		return
	}
	b.scheduler.Schedule(TickKey{Slide: t.Slide, Generation: t.generation}, TickInterval)
}

func (b *TimerBank) publish(t *Timer) {
	b.ticks.emit(t.update())
}

func (t *Timer) update() TimerUpdate {
	return TimerUpdate{
		Slide:            t.Slide,
		RemainingSeconds: t.RemainingSeconds,
		DurationSeconds:  t.DurationSeconds,
		Running:          t.Running,
		Display:          FormatClock(t.RemainingSeconds),
		Severity:         SeverityFor(t.RemainingSeconds, t.DurationSeconds),
	}
}
