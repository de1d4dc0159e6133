package ui

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/approvals/internal/collection"
	"github.com/five82/approvals/internal/export"
	"github.com/five82/approvals/internal/notify"
	"github.com/five82/approvals/internal/sessions"
	"github.com/five82/approvals/internal/state"
)

const defaultPollTick = time.Second

// Refresher replaces the store contents with freshly fetched records.
type Refresher interface {
	Refresh(ctx context.Context) (uint64, error)
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Refresher  Refresher
	Board      *notify.Board
	Download   export.Exporter
	ExportPath string // shown after a download
	Clipboard  export.Exporter
	View       collection.ViewState // initial view, usually from prefs
	ThemeName  string
	PollTick   time.Duration // how often the store is re-read
	Logger     *log.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	store      *state.Store
	refresher  Refresher
	board      *notify.Board
	download   export.Exporter
	clipboard  export.Exporter
	exportPath string
	logger     *log.Logger
	pollTick   time.Duration

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot   state.Snapshot
	facets     []collection.Option
	refreshing bool
	notices    []notify.Notice

	// View state
	view       collection.ViewState
	projection collection.Projection
	gate       collection.Gate
	cursor     int // highlighted row on the current page

	// Filter input
	filterInput  textinput.Model
	filterActive bool

	// Detail modal
	detail viewport.Model

	spinner spinner.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = defaultPollTick
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	view := opts.View
	if view.PageSize == 0 && len(view.Columns) == 0 {
		view = collection.NewViewState()
	}
	if view.Status == (collection.Option{}) {
		view = view.WithStatus(collection.AllStatus)
	}

	ti := textinput.New()
	ti.Placeholder = "Find requests"
	ti.Prompt = "/ "
	ti.CharLimit = 200
	ti.SetValue(view.Filter)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:         ctx,
		store:       opts.Store,
		refresher:   opts.Refresher,
		board:       opts.Board,
		download:    opts.Download,
		clipboard:   opts.Clipboard,
		exportPath:  opts.ExportPath,
		logger:      logger,
		pollTick:    pollTick,
		theme:       GetTheme(opts.ThemeName),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		view:        view,
		facets:      []collection.Option{collection.AllStatus},
		filterInput: ti,
		spinner:     sp,
	}
	m.reproject()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
		m.spinner.Tick,
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.refresher != nil {
		cmds = append(cmds, refreshCmd(m.ctx, m.refresher))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.filterInput.Width = max(10, msg.Width/3)
		m.ready = true
		m.updateDetailViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case refreshDoneMsg:
		// An in-flight refresh started elsewhere is tracked by the store's
		// Loading flag, so the local flag always clears here.
		m.refreshing = false
		if msg.err != nil {
			m.logger.Printf("refresh failed: %v", msg.err)
		}
		if m.store == nil {
			return m, nil
		}
		return m, fetchSnapshotCmd(m.store)

	case exportDoneMsg:
		if msg.err != nil {
			m.logger.Printf("export failed: %v", msg.err)
		}
		m.readNotices()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.gate.DetailVisible() {
		return m.renderDetail()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.filterActive {
		return m.handleFilterKey(msg)
	}

	if m.gate.DetailVisible() {
		return m.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))

	case key.Matches(msg, m.keys.Refresh):
		return m.startRefresh()

	case key.Matches(msg, m.keys.Download):
		return m.startExport(m.download)

	case key.Matches(msg, m.keys.Copy):
		return m.startExport(m.clipboard)

	case key.Matches(msg, m.keys.Dismiss):
		if m.board != nil {
			m.board.Notify(nil)
		}
		m.notices = nil

	case key.Matches(msg, m.keys.Filter):
		m.filterActive = true
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.CycleStatus):
		m.setView(m.view.WithStatus(nextFacet(m.facets, m.view.Status)))

	case key.Matches(msg, m.keys.ClearFilter):
		m.filterInput.SetValue("")
		m.setView(m.view.ClearFilters())

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.projection.Rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(0, len(m.projection.Rows)-1)

	case key.Matches(msg, m.keys.NextPage):
		if m.projection.PageIndex < m.projection.PageCount-1 {
			m.setView(m.view.WithPage(m.projection.PageIndex + 1))
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.PrevPage):
		if m.projection.PageIndex > 0 {
			m.setView(m.view.WithPage(m.projection.PageIndex - 1))
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.PageSize):
		m.setView(m.view.NextPageSize())

	case key.Matches(msg, m.keys.SortColumn):
		m.setView(m.view.WithSort(nextSort(m.view.Columns, m.view.Sort)))
	case key.Matches(msg, m.keys.SortDir):
		if !m.view.Sort.IsZero() {
			m.setView(m.view.ToggleSort(m.view.Sort.Column))
		}

	case key.Matches(msg, m.keys.WrapLines):
		m.setView(m.view.WithWrapLines(!m.view.WrapLines))

	case key.Matches(msg, m.keys.Columns):
		if id, ok := columnForKey(msg.String()); ok {
			m.setView(m.view.ToggleColumn(id))
		}

	case key.Matches(msg, m.keys.Select):
		m.toggleSelection()

	case key.Matches(msg, m.keys.Open):
		if g, ok := m.gate.Open(); ok {
			m.gate = g
			m.updateDetailViewport()
			m.detail.GotoTop()
		}

	case key.Matches(msg, m.keys.Escape):
		m.gate = m.gate.Clear()
	}

	return m, nil
}

// handleFilterKey routes keys to the filter input while it has focus.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		m.filterActive = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if v := m.filterInput.Value(); v != m.view.Filter {
		m.setView(m.view.WithFilter(v))
	}
	return m, cmd
}

// handleDetailKey handles keys while the detail modal is open.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Open), key.Matches(msg, m.keys.Quit):
		m.gate = m.gate.Dismiss()
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// toggleSelection selects the highlighted row, or clears the selection if
// the highlighted row is already selected.
func (m *Model) toggleSelection() {
	row, ok := m.highlighted()
	if !ok {
		return
	}
	if id, selected := m.gate.SelectedID(); selected && id == row.ID {
		m.gate = m.gate.Clear()
		return
	}
	if g, ok := m.gate.Select(m.snapshot.Generation, m.projection, row.ID); ok {
		m.gate = g
	}
}

// highlighted returns the record under the cursor.
func (m Model) highlighted() (sessions.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.projection.Rows) {
		return sessions.Record{}, false
	}
	return m.projection.Rows[m.cursor], true
}

// startRefresh kicks off a refresh unless one is already running.
func (m Model) startRefresh() (tea.Model, tea.Cmd) {
	if m.refresher == nil || m.loading() {
		return m, nil
	}
	m.refreshing = true
	return m, refreshCmd(m.ctx, m.refresher)
}

// startExport hands the full record set to exporter. Nothing happens when
// no records are loaded.
func (m Model) startExport(exporter export.Exporter) (tea.Model, tea.Cmd) {
	if exporter == nil || !m.canExport() {
		return m, nil
	}
	var sink notify.Sink
	if m.board != nil {
		sink = m.board
	}
	adapter := export.Adapter{Exporter: exporter, Sink: sink}
	records := m.snapshot.Records
	if m.store != nil {
		records = m.store.Snapshot().Records
	}
	return m, exportCmd(adapter, records)
}

// canExport reports whether the download action is enabled.
func (m Model) canExport() bool {
	return len(m.snapshot.Records) > 0
}

// loading reports whether a refresh is in flight.
func (m Model) loading() bool {
	return m.refreshing || m.snapshot.Loading
}

// handleTick re-reads the store and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return m, tea.Batch(cmds...)
}

// applySnapshot installs a store snapshot. Facets are rebuilt and the
// selection is dropped only when the record set generation changed.
func (m *Model) applySnapshot(snap state.Snapshot) {
	changed := snap.Generation != m.snapshot.Generation
	m.snapshot = snap
	if changed {
		m.facets = collection.StatusFacets(snap.Records)
		page := m.view.PageIndex
		m.view = m.view.WithStatus(collection.FacetFor(m.facets, m.view.Status.Label)).WithPage(page)
		m.gate = m.gate.Sync(snap.Generation)
	}
	m.readNotices()
	m.reproject()
	if changed {
		m.updateDetailViewport()
	}
}

func (m *Model) readNotices() {
	if m.board != nil {
		m.notices = m.board.Notices()
	}
}

// setView installs a new view state and re-projects. Changing what is
// shown (filters, order or page) drops the selection.
func (m *Model) setView(v collection.ViewState) {
	if queryChanged(m.view, v) {
		m.gate = m.gate.Clear()
	}
	m.view = v
	m.reproject()
}

func queryChanged(a, b collection.ViewState) bool {
	return a.Filter != b.Filter ||
		a.Status != b.Status ||
		a.Sort != b.Sort ||
		a.PageIndex != b.PageIndex ||
		a.PageSize != b.PageSize
}

// reproject recomputes the visible page and clamps the cursor.
func (m *Model) reproject() {
	m.projection = collection.Project(m.snapshot.Records, m.view)
	m.view = m.view.WithPage(m.projection.PageIndex)
	if id, ok := m.gate.SelectedID(); ok && !m.projection.Contains(id) {
		m.gate = m.gate.Clear()
	}
	if m.cursor >= len(m.projection.Rows) {
		m.cursor = max(0, len(m.projection.Rows)-1)
	}
}

// nextFacet returns the option after current, wrapping to the first.
func nextFacet(options []collection.Option, current collection.Option) collection.Option {
	if len(options) == 0 {
		return collection.AllStatus
	}
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

// nextSort advances the sort to the next visible column, ascending, and
// back to the default order after the last one.
func nextSort(visible collection.ColumnSet, current collection.SortSpec) collection.SortSpec {
	if len(visible) == 0 {
		return collection.SortSpec{}
	}
	if current.IsZero() {
		return collection.SortSpec{Column: visible[0]}
	}
	for i, id := range visible {
		if id == current.Column {
			if i+1 < len(visible) {
				return collection.SortSpec{Column: visible[i+1]}
			}
			return collection.SortSpec{}
		}
	}
	return collection.SortSpec{Column: visible[0]}
}

// selectableColumns lists the columns users can toggle, in key order.
func selectableColumns() []collection.Column {
	var out []collection.Column
	for _, c := range collection.Columns() {
		if c.Selectable {
			out = append(out, c)
		}
	}
	return out
}

// columnForKey maps "1".."8" to a selectable column.
func columnForKey(k string) (collection.ColumnID, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return "", false
	}
	cols := selectableColumns()
	idx := int(k[0] - '1')
	if idx >= len(cols) {
		return "", false
	}
	return cols[idx].ID, true
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type refreshDoneMsg struct {
	generation uint64
	err        error
}

type exportDoneMsg struct {
	err error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func refreshCmd(ctx context.Context, r Refresher) tea.Cmd {
	return func() tea.Msg {
		gen, err := r.Refresh(ctx)
		return refreshDoneMsg{generation: gen, err: err}
	}
}

func exportCmd(a export.Adapter, records []sessions.Record) tea.Cmd {
	return func() tea.Msg {
		return exportDoneMsg{err: a.Run(records)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
