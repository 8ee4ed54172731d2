package shell

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/slotdeck/internal/config"
	"github.com/alexisbeaulieu97/slotdeck/internal/drawer"
	"github.com/alexisbeaulieu97/slotdeck/internal/gesture"
	"github.com/alexisbeaulieu97/slotdeck/internal/logger"
	"github.com/alexisbeaulieu97/slotdeck/internal/slot"
	"github.com/alexisbeaulieu97/slotdeck/internal/viewport"
	"github.com/alexisbeaulieu97/slotdeck/internal/visibility"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options wires the shell to its collaborators.
type Options struct {
	Config *config.Config
	Source slot.Source
	Scope  *visibility.Scope
	Logger *logger.Logger
}

// Model is the layout shell. It owns one session: the sidebar flag, the
// drawer, the gesture tracker and the viewport switch all live and die with it.
type Model struct {
	cfg        *config.Config
	source     slot.Source
	reconciler *slot.Reconciler

	scope    *visibility.Scope
	sidebar  *visibility.Controller
	drawer   *drawer.Machine
	tracker  *gesture.Tracker
	viewport *viewport.Switch
	capture  *pointerCapture

	// Reconciled output of the last pull, per slot.
	assignment slot.Assignment

	notify chan struct{}
	log    *logger.Logger

	width    int
	height   int
	errMsg   string
	quitting bool
}

// New builds the shell. A nil scope opens a fresh session scope.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	scope := opts.Scope
	if scope == nil {
		scope = visibility.NewScope(cfg.Sidebar.SidebarVisible())
	}
	sidebar, err := scope.Controller()
	if err != nil {
		return Model{}, err
	}

	log := opts.Logger.Component("shell")
	capture := &pointerCapture{}
	machine := drawer.New(opts.Logger)
	tracker := gesture.NewTracker(gesture.Options{
		Threshold: cfg.Gesture.Threshold,
		DragSlop:  cfg.Gesture.DragSlop,
		OnClose:   func() { machine.GestureClose() },
		Capturer:  capture,
	}, opts.Logger)
	machine.OnClose(func() {
		tracker.Cancel()
		capture.Reset()
	})
	machine.OnTransition(func(from, to drawer.State) {
		log.WithFields(map[string]any{"from": from.String(), "to": to.String()}).Debug("drawer state changed")
	})

	m := Model{
		cfg:        cfg,
		source:     opts.Source,
		reconciler: slot.NewReconciler(opts.Source, cfg.SlotPolicies(), opts.Logger),
		scope:      scope,
		sidebar:    sidebar,
		drawer:     machine,
		tracker:    tracker,
		viewport:   viewport.NewSwitch(viewport.BreakpointClassifier{MaxMobileWidth: cfg.Viewport.MobileMaxWidth}),
		capture:    capture,
		assignment: slot.Assignment{},
		notify:     make(chan struct{}, 1),
		log:        log,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	return m, nil
}

// Notify signals that the registry changed. It never blocks; bursts of
// changes collapse into one pull.
func (m Model) Notify(slot.Assignment) {
	select {
	case m.notify <- struct{}{}:
	default:
	}
}

// Init pulls the initial slot contents and starts listening for changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return SlotsChangedMsg{} },
		waitForSlots(m.notify),
	)
}

// Close ends the session scope.
func (m Model) Close() {
	m.scope.Close()
}

// DrawerState returns the drawer's current state.
func (m Model) DrawerState() drawer.State {
	return m.drawer.State()
}

// SidebarVisible reports the shared sidebar flag.
func (m Model) SidebarVisible() bool {
	return m.sidebar.IsVisible()
}

// Variant returns the active layout tree.
func (m Model) Variant() viewport.Variant {
	return m.viewport.Variant()
}

// Slot returns the reconciled descriptors currently shown in a slot.
func (m Model) Slot(name slot.Name) []slot.Descriptor {
	return m.assignment[name]
}

// reconcile pulls every slot and feeds the drawer.
func (m *Model) reconcile() {
	m.assignment = m.reconciler.SelectAll()
	m.drawer.SetContent(m.assignment[slot.MobileBottom])
}

// applyConfig swaps in a reloaded configuration without restarting the session.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.cfg = cfg
	m.tracker.SetThreshold(cfg.Gesture.Threshold)
	if m.viewport.SetClassifier(viewport.BreakpointClassifier{MaxMobileWidth: cfg.Viewport.MobileMaxWidth}) {
		m.log.WithFields(map[string]any{"variant": m.viewport.Variant().String()}).Debug("layout switched by config")
		m.tracker.Cancel()
		m.capture.Reset()
	}
	policies := cfg.SlotPolicies()
	for _, name := range slot.All() {
		m.reconciler.SetPolicy(name, policies[name])
	}
	m.reconcile()
}
