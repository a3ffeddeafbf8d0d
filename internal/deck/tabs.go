package deck

// TabSet tracks which panel of a tabbed slide is showing. Exactly one tab is
// active whenever the set is non-empty.
type TabSet struct {
	tabs   []Tab
	active int
}

// NewTabSet starts on the first tab.
func NewTabSet(tabs []Tab) *TabSet {
	return &TabSet{tabs: append([]Tab(nil), tabs...)}
}

func (t *TabSet) Len() int { return len(t.tabs) }

func (t *TabSet) Tabs() []Tab { return t.tabs }

// Active returns the showing tab.
func (t *TabSet) Active() (Tab, bool) {
	if len(t.tabs) == 0 {
		return Tab{}, false
	}
	return t.tabs[t.active], true
}

// ActiveIndex is the position of the showing tab.
func (t *TabSet) ActiveIndex() int { return t.active }

// Select shows the tab with the given id. Unknown ids are ignored.
func (t *TabSet) Select(id string) bool {
	for i, tab := range t.tabs {
		if tab.ID == id {
			t.active = i
			return true
		}
	}
	return false
}

// Next shows the following tab, wrapping around.
func (t *TabSet) Next() {
	if len(t.tabs) == 0 {
		return
	}
	t.active = (t.active + 1) % len(t.tabs)
}

// Prev shows the preceding tab, wrapping around.
func (t *TabSet) Prev() {
	if len(t.tabs) == 0 {
		return
	}
	t.active = (t.active - 1 + len(t.tabs)) % len(t.tabs)
}

// Reset shows the first tab again.
func (t *TabSet) Reset() { t.active = 0 }
