package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"deckhand/internal/config"
	"deckhand/internal/deck"
	"deckhand/internal/domain"
	"deckhand/internal/eventbus"
	"deckhand/internal/forms"
	"deckhand/internal/report"
	"deckhand/internal/ui/commands"
	"deckhand/internal/ui/input"
	inputtypes "deckhand/internal/ui/input/types"
	"deckhand/internal/ui/state"
	"deckhand/internal/ui/views"
)

// Timeline items appear one at a time after a slide is entered.
const revealInterval = 200 * time.Millisecond

// statusDuration is how long a status bar message stays up
const statusDuration = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	presentation *deck.Presentation
	scheduler    *deck.QueueScheduler
	session      *forms.Session
	roles        []domain.Role
	tasks        []domain.Task

	// UI-specific state not in AppState
	width  int
	height int
	help   help.Model

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler

	// pending collects commands raised by presentation hooks during Update
	pending []tea.Cmd
	// tickAfter delivers msg after d
	tickAfter func(d time.Duration, msg tea.Msg) tea.Cmd

	revealGen   uint64
	pulseGen    uint64
	pulseFrames int
	pulsePeriod time.Duration
	statusGen   uint64
	saveGen     uint64

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model and shows the first slide. exporter and
// bus may be nil.
func NewModel(cfg *config.Config, session *forms.Session, exporter commands.Exporter, bus eventbus.EventBus) (*Model, error) {
	slides, err := cfg.DeckSlides()
	if err != nil {
		return nil, err
	}

	scheduler := deck.NewQueueScheduler()
	presentation, err := deck.NewPresentation(slides, scheduler, deck.WithAnimatedSection(cfg.AnimatedSection))
	if err != nil {
		return nil, err
	}

	appState := state.NewAppState()
	appState.ShowHelpBar = cfg.UISettings.ShowHelpBar
	for i, s := range slides {
		if len(s.Tabs) > 0 {
			appState.Tabs[i] = deck.NewTabSet(s.Tabs)
		}
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		presentation: presentation,
		scheduler:    scheduler,
		session:      session,
		roles:        cfg.DomainRoles(),
		tasks:        cfg.DomainTasks(),
		help:         help.New(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		tickAfter: func(d time.Duration, msg tea.Msg) tea.Cmd {
			return tea.Tick(d, func(time.Time) tea.Msg { return msg })
		},
	}
	m.helpRenderer = NewHelpRenderer(m.inputHandler.Keys())

	m.cmdExecutor = commands.NewExecutor(&commands.CommandContext{
		Ctx:      context.Background(),
		State:    appState,
		Bus:      bus,
		Session:  session,
		Exporter: exporter,
	})

	presentation.OnSlideChanged(m.onSlideChanged)
	presentation.OnTick(m.state.SetTimer)
	presentation.OnComplete(m.onComplete)

	presentation.Start()
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Presentation exposes the controller, for wiring and tests
func (m *Model) Presentation() *deck.Presentation {
	return m.presentation
}

// State exposes the display state, for tests
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns the commands raised while showing the first slide
func (m *Model) Init() tea.Cmd {
	return m.flush()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{State: m.state, Session: m.session}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		cmds = append(cmds, m.flush())
		return m, tea.Batch(cmds...)

	default:
		cmd := m.handleNonKeyboardMsg(msg)
		return m, tea.Batch(cmd, m.flush())
	}
}

// flush turns hook output and newly scheduled ticks into commands
func (m *Model) flush() tea.Cmd {
	cmds := m.pending
	m.pending = nil
	for _, s := range m.scheduler.Drain() {
		cmds = append(cmds, m.tickAfter(s.After, timerTickMsg{key: s.Key}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) onSlideChanged(c deck.SlideChange) {
	m.state.CurrentSlide = c.Index
	m.state.SlideCount = c.Count
	m.state.FocusedField = 0
	m.refreshFields()

	slide := m.presentation.Deck().Current()
	m.revealGen++
	if c.Animate && len(slide.Items) > 0 {
		m.state.RevealedItems = 0
		m.pending = append(m.pending, m.tickAfter(revealInterval, revealMsg{gen: m.revealGen}))
	} else {
		m.state.RevealedItems = len(slide.Items)
	}

	if m.bus != nil {
		m.bus.Publish(eventbus.SlideChangedEvent{Index: c.Index, Count: c.Count, Title: slide.Title})
	}
}

func (m *Model) onComplete(sig deck.CompleteSignal) {
	m.pulseGen++
	m.pulseFrames = sig.Pulse.Count * 2
	m.pulsePeriod = sig.Pulse.Period
	m.state.Pulse = state.PulseState{Slide: sig.Slide, Active: true, Lit: true}

	m.pending = append(m.pending,
		m.tickAfter(m.pulsePeriod/2, pulseMsg{gen: m.pulseGen, frame: 1}),
		m.tickAfter(sig.Pulse.Decay, pulseClearMsg{gen: m.pulseGen}),
	)

	if m.bus != nil {
		title := ""
		if s, ok := m.presentation.Deck().Slide(sig.Slide); ok {
			title = s.Title
		}
		m.bus.Publish(eventbus.TimerCompletedEvent{Slide: sig.Slide, Title: title})
	}
}

// setStatus shows a message in the status bar for a few seconds
func (m *Model) setStatus(text string) tea.Cmd {
	m.statusGen++
	m.state.StatusMessage = text
	return m.tickAfter(statusDuration, clearStatusMsg{gen: m.statusGen})
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "next":
			m.presentation.Next()
		case "prev":
			m.presentation.Previous()
		}

	case inputtypes.PauseAllAction:
		m.presentation.Interrupt()
		if m.bus != nil {
			m.bus.Publish(eventbus.TimersPausedEvent{})
		}
		return m.setStatus("All timers paused")

	case inputtypes.ToggleTimerAction:
		if !m.currentHasTimer() {
			return m.setStatus("No timer on this slide")
		}
		m.presentation.ToggleCurrentTimer()

	case inputtypes.ResetTimerAction:
		if !m.currentHasTimer() {
			return m.setStatus("No timer on this slide")
		}
		m.presentation.ResetCurrentTimer()

	case inputtypes.RestartTimerAction:
		if !m.currentHasTimer() {
			return m.setStatus("No timer on this slide")
		}
		m.presentation.RestartCurrentTimer()

	case inputtypes.SwitchTabAction:
		if tabs := m.state.ActiveTabs(); tabs != nil {
			if a.Delta < 0 {
				tabs.Prev()
			} else {
				tabs.Next()
			}
			m.state.FocusedField = 0
			m.refreshFields()
		}

	case inputtypes.FocusFieldAction:
		m.state.MoveFocus(a.Delta)

	case inputtypes.ActivateFieldAction:
		cmd := m.cmdExecutor.ExecuteActivateField(a.Key)
		m.refreshFields()
		return cmd

	case inputtypes.SubmitTextAction:
		cmd := m.cmdExecutor.ExecuteSetField(a.Key, a.Text)
		m.refreshFields()
		return cmd

	case inputtypes.CancelTextAction, inputtypes.UpdateTextAction:
		// The text input holds the draft; nothing to store yet

	case inputtypes.ExportAction:
		return m.cmdExecutor.ExecuteExport()

	case inputtypes.CopyReportAction:
		return m.cmdExecutor.ExecuteCopyReport()

	case inputtypes.PreviewReportAction:
		if m.state.LastReport == nil {
			return m.setStatus("No report exported yet")
		}
		return m.showInPager("report", m.state.LastReport.Text)

	case inputtypes.StartAgainAction:
		cmd := m.cmdExecutor.ExecuteStartAgain()
		m.state.FocusedField = 0
		m.refreshFields()
		return cmd

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.help.ShowAll = !m.help.ShowAll
			return nil
		}
		return m.showInPager("help", m.helpRenderer.RenderHelpContent())

	case inputtypes.StatusAction:
		return m.setStatus(a.Message)

	case inputtypes.QuitAction:
		log.Printf("Quit requested (force=%v)", a.Force)
		return tea.Quit
	}

	return nil
}

func (m *Model) currentHasTimer() bool {
	_, ok := m.presentation.CurrentTimer()
	return ok
}

// showInPager returns a command that shows content using the ov pager
func (m *Model) showInPager(what, content string) tea.Cmd {
	if m.program == nil {
		return m.setStatus("Pager unavailable")
	}
	pager := NewPagerOps(m.program)
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})
		err := pager.Show(content)
		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{what: what, err: err}
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.presentation.HandleTick(msg.key)

	case revealMsg:
		if msg.gen != m.revealGen {
			return nil
		}
		items := len(m.presentation.Deck().Current().Items)
		if m.state.RevealedItems < items {
			m.state.RevealedItems++
		}
		if m.state.RevealedItems < items {
			return m.tickAfter(revealInterval, revealMsg{gen: msg.gen})
		}

	case pulseMsg:
		if msg.gen != m.pulseGen || !m.state.Pulse.Active {
			return nil
		}
		if msg.frame >= m.pulseFrames {
			m.state.Pulse.Lit = false
			return nil
		}
		m.state.Pulse.Lit = msg.frame%2 == 0
		return m.tickAfter(m.pulsePeriod/2, pulseMsg{gen: msg.gen, frame: msg.frame + 1})

	case pulseClearMsg:
		if msg.gen == m.pulseGen {
			m.state.Pulse = state.PulseState{}
		}

	case clearStatusMsg:
		if msg.gen == m.statusGen {
			m.state.StatusMessage = ""
		}

	case clearSaveLabelMsg:
		if msg.gen == m.saveGen {
			m.state.SaveLabel = ""
		}

	case commands.StatusMsg:
		return m.setStatus(msg.Text)

	case commands.ExportedMsg:
		if msg.Err != nil {
			return m.setStatus(fmt.Sprintf("Export failed: %v", msg.Err))
		}
		m.state.LastReport = msg.Result
		m.state.ShowStartAgain = true
		m.state.SaveLabel = report.SavedLabel
		m.saveGen++
		return tea.Batch(
			m.tickAfter(report.SavedLabelDuration, clearSaveLabelMsg{gen: m.saveGen}),
			m.setStatus(fmt.Sprintf("Saved %s", msg.Result.ReportPath)),
		)

	case commands.CopiedMsg:
		if msg.Err != nil {
			log.Printf("Copy failed: %v", msg.Err)
			return m.setStatus(fmt.Sprintf("Copy failed: %v", msg.Err))
		}
		return m.setStatus("Report copied to clipboard")

	case EventMsg:
		if e, ok := msg.Event.(eventbus.ErrorEvent); ok {
			return m.setStatus(fmt.Sprintf("%s: %v", e.Message, e.Err))
		}

	case pagerMsg:
		if msg.err != nil {
			log.Printf("%s pager failed: %v", msg.what, msg.err)
		}

	case pauseRenderingMsg:
		m.state.InPagerMode = true

	case resumeRenderingMsg:
		m.state.InPagerMode = false

	default:
		// Cursor blink and other text input messages
		return m.inputHandler.Update(msg)
	}

	return nil
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPagerMode {
		return ""
	}

	d := m.presentation.Deck()
	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		DeckTitle:      m.config.Title,
		Slide:          d.Current(),
		Index:          d.CurrentIndex(),
		Count:          d.Len(),
		IsFirst:        d.IsFirst(),
		IsLast:         d.IsLast(),
		RevealedItems:  m.state.RevealedItems,
		Confirming:     m.inputHandler.CurrentMode() == inputtypes.ModeConfirm,
		StatusMessage:  m.state.StatusMessage,
		SaveLabel:      m.state.SaveLabel,
		ShowStartAgain: m.state.ShowStartAgain,
		ShowHelpBar:    m.state.ShowHelpBar,
		HelpModel:      m.help,
		Keys:           m.inputHandler.Keys(),
	}

	if u, ok := m.state.Timer(d.CurrentIndex()); ok {
		vs.HasTimer = true
		vs.Timer = u
		vs.PulseLit = m.state.Pulse.Active && m.state.Pulse.Lit && m.state.Pulse.Slide == d.CurrentIndex()
	}

	if tabs := m.state.ActiveTabs(); tabs != nil {
		vs.Tabs = tabs.Tabs()
		vs.ActiveTab = tabs.ActiveIndex()
	}

	editing := false
	if ti := m.inputHandler.TextInput(); ti != nil {
		editing = true
		vs.TextInput = ti.View()
	}
	vs.FieldGroups = m.fieldGroupViews(editing)

	return m.renderer.Render(vs)
}
