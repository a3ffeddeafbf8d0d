package deck

// DefaultAnimatedSection is the section tag whose slides replay their entry
// animation when they become active.
const DefaultAnimatedSection = "Timeline"

// Slide is one page of the deck. Its identity is its position.
type Slide struct {
	Title           string
	Body            string
	Kind            string
	DurationSeconds int
	SectionTag      string
	Items           []string
	Fields          []string
	Tabs            []Tab
}

// Tab is one panel of a tabbed slide.
type Tab struct {
	ID     string
	Title  string
	Body   string
	Fields []string
}

// SlideChange is emitted after the current slide changes.
type SlideChange struct {
	Index      int
	Previous   int
	Count      int
	SectionTag string
	// Animate is set when the new slide's section tag matches the deck's
	// animated section.
	Animate bool
}

// SlideDeck owns the ordered slides and the current position. Moving between
// slides pauses the outgoing timer and restarts the incoming one.
type SlideDeck struct {
	slides          []Slide
	current         int
	started         bool
	animatedSection string
	timers          *TimerBank

	changed hookSet[SlideChange]
}

// NewSlideDeck validates slides and registers their timers with bank.
func NewSlideDeck(slides []Slide, bank *TimerBank) (*SlideDeck, error) {
	d := &SlideDeck{
		timers:          bank,
		animatedSection: DefaultAnimatedSection,
	}
	if err := d.Initialize(slides); err != nil {
		return nil, err
	}
	return d, nil
}

// Initialize replaces the slide set. It fails with a ConfigError when the
// set is empty or a duration is negative, leaving the deck untouched.
func (d *SlideDeck) Initialize(slides []Slide) error {
	if err := validateSlides(slides); err != nil {
		return err
	}
	d.slides = append([]Slide(nil), slides...)
	d.current = 0
	d.started = false
	d.timers.clear()
	for i, s := range d.slides {
		d.timers.Register(i, s.DurationSeconds)
	}
	return nil
}

// SetAnimatedSection changes which section tag triggers the entry animation.
func (d *SlideDeck) SetAnimatedSection(tag string) {
	d.animatedSection = tag
}

// Start activates the first slide: its timer starts and the first change is
// signalled. Calling it again does nothing.
func (d *SlideDeck) Start() {
	if d.started {
		return
	}
	d.started = true
	d.timers.Start(d.current)
	d.changed.emit(d.change(d.current))
}

// GoTo makes index the current slide. Out of range targets and the current
// index are no-ops.
func (d *SlideDeck) GoTo(index int) {
	if index < 0 || index >= len(d.slides) || index == d.current {
		return
	}
	previous := d.current
	d.timers.Pause(previous)
	d.current = index
	d.started = true
	d.timers.Start(index)
	d.changed.emit(d.change(previous))
}

// Next moves forward one slide; no-op on the last slide.
func (d *SlideDeck) Next() {
	if d.IsLast() {
		return
	}
	d.GoTo(d.current + 1)
}

// Previous moves back one slide; no-op on the first slide.
func (d *SlideDeck) Previous() {
	if d.IsFirst() {
		return
	}
	d.GoTo(d.current - 1)
}

func (d *SlideDeck) IsFirst() bool { return d.current == 0 }

func (d *SlideDeck) IsLast() bool { return d.current == len(d.slides)-1 }

// CurrentIndex is the 0-based position of the active slide.
func (d *SlideDeck) CurrentIndex() int { return d.current }

// Len is the number of slides.
func (d *SlideDeck) Len() int { return len(d.slides) }

// Current returns the active slide.
func (d *SlideDeck) Current() Slide { return d.slides[d.current] }

// Slide returns the slide at index.
func (d *SlideDeck) Slide(index int) (Slide, bool) {
	if index < 0 || index >= len(d.slides) {
		return Slide{}, false
	}
	return d.slides[index], true
}

// OnSlideChanged subscribes to slide changes.
func (d *SlideDeck) OnSlideChanged(fn func(SlideChange)) func() {
	return d.changed.add(fn)
}

func (d *SlideDeck) change(previous int) SlideChange {
	s := d.slides[d.current]
	return SlideChange{
		Index:      d.current,
		Previous:   previous,
		Count:      len(d.slides),
		SectionTag: s.SectionTag,
		Animate:    s.SectionTag != "" && s.SectionTag == d.animatedSection,
	}
}
