package deck

// Option configures a Presentation.
type Option func(*Presentation)

// WithAnimatedSection sets the section tag that replays the entry animation.
func WithAnimatedSection(tag string) Option {
	return func(p *Presentation) {
		p.deck.SetAnimatedSection(tag)
	}
}

// Presentation is the single owner of the presentation state: the deck and
// its timers. It is constructed once at startup and driven from one event
// loop; it is not safe for concurrent use.
type Presentation struct {
	deck   *SlideDeck
	timers *TimerBank
}

// NewPresentation builds the deck and timer bank for slides. Ticks are
// scheduled on s and must be handed back through HandleTick.
func NewPresentation(slides []Slide, s Scheduler, opts ...Option) (*Presentation, error) {
	bank := NewTimerBank(s)
	d, err := NewSlideDeck(slides, bank)
	if err != nil {
		return nil, err
	}
	p := &Presentation{deck: d, timers: bank}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Presentation) Deck() *SlideDeck { return p.deck }

func (p *Presentation) Timers() *TimerBank { return p.timers }

// Start shows the first slide.
func (p *Presentation) Start() { p.deck.Start() }

func (p *Presentation) GoTo(index int) { p.deck.GoTo(index) }

func (p *Presentation) Next() { p.deck.Next() }

func (p *Presentation) Previous() { p.deck.Previous() }

// Interrupt pauses every timer.
func (p *Presentation) Interrupt() { p.timers.PauseAll() }

// HandleTick delivers a tick scheduled earlier.
func (p *Presentation) HandleTick(key TickKey) { p.timers.Tick(key) }

// ToggleCurrentTimer pauses or resumes the active slide's timer.
func (p *Presentation) ToggleCurrentTimer() { p.timers.Toggle(p.deck.CurrentIndex()) }

// ResetCurrentTimer stops the active slide's timer at its full duration.
func (p *Presentation) ResetCurrentTimer() { p.timers.Reset(p.deck.CurrentIndex()) }

// RestartCurrentTimer resets and starts the active slide's timer; this is
// the only way to re-arm a finished timer.
func (p *Presentation) RestartCurrentTimer() { p.timers.Start(p.deck.CurrentIndex()) }

// CurrentTimer returns the active slide's timer state, if it has one.
func (p *Presentation) CurrentTimer() (TimerUpdate, bool) {
	return p.timers.Snapshot(p.deck.CurrentIndex())
}

func (p *Presentation) OnSlideChanged(fn func(SlideChange)) func() {
	return p.deck.OnSlideChanged(fn)
}

func (p *Presentation) OnTick(fn func(TimerUpdate)) func() {
	return p.timers.OnTick(fn)
}

func (p *Presentation) OnComplete(fn func(CompleteSignal)) func() {
	return p.timers.OnComplete(fn)
}
