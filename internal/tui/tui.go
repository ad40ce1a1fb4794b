// Package tui implements the Bubble Tea model for zfake: a settings form
// above a table of generated records that grows as it is scrolled.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zfake/internal/config"
	"github.com/zarlcorp/zfake/internal/feed"
	"github.com/zarlcorp/zfake/internal/identity"
)

type focusID int

const (
	focusRegion focusID = iota
	focusSlider
	focusRate
	focusSeed
	focusTable
	focusCount
)

// lines used by everything except the table
const chromeHeight = 12

// batchMsg carries a filled page back to the event loop.
type batchMsg struct {
	batch feed.Batch
}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

// Model is the root TUI model.
type Model struct {
	version string
	gen     *identity.Generator
	driver  *feed.Driver
	log     *slog.Logger

	form  formModel
	table table.Model
	focus focusID
	flash string

	width  int
	height int
}

// New creates the root model and generates the first page for cfg. When
// cfg carries no seed, a random one is drawn.
func New(version string, gen *identity.Generator, cfg config.Config, log *slog.Logger) Model {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	opts := cfg.Options
	if !cfg.SeedSet {
		opts.Seed = identity.RandomSeed()
	}
	opts.MistakeRate = identity.ClampRate(opts.MistakeRate)

	m := Model{
		version: version,
		gen:     gen,
		driver:  feed.New(gen, cfg.ScrollThreshold, log),
		log:     log,
		form:    newFormModel(opts),
		table:   newRecordTable(),
		focus:   focusTable,
	}
	m.table.Focus()
	m.driver.SetOptions(opts)
	m.syncRows(true)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.fetchIfNearBottom()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, m.fetchIfNearBottom()

	case batchMsg:
		if !m.driver.Commit(msg.batch) {
			return m, nil
		}
		m.syncRows(false)
		return m, m.fetchIfNearBottom()

	case flashMsg:
		m.flash = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// text fields take every printable key, so q only quits elsewhere
	if !m.editingText() && key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, zstyle.KeyTab):
		return m.setFocus((m.focus + 1) % focusCount), nil
	case msg.String() == "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount), nil
	case msg.String() == "ctrl+r":
		return m.randomizeSeed()
	}

	switch m.focus {
	case focusTable:
		return m.handleTableKey(msg)
	case focusRegion, focusSlider:
		if msg.String() == "r" {
			return m.randomizeSeed()
		}
	}

	form, opts, err := m.form.update(m.focus, msg)
	m.form = form
	if err != nil {
		m.flash = err.Error()
		return m, clearFlashAfter()
	}
	return m.apply(opts)
}

func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		return m.randomizeSeed()
	case "enter":
		return m.copySelected()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, tea.Batch(cmd, m.fetchIfNearBottom())
}

// apply hands a new snapshot to the driver. Equal snapshots are ignored.
func (m Model) apply(opts identity.Options) (tea.Model, tea.Cmd) {
	if !m.driver.SetOptions(opts) {
		return m, nil
	}
	m.syncRows(true)
	return m, m.fetchIfNearBottom()
}

func (m Model) randomizeSeed() (tea.Model, tea.Cmd) {
	opts := m.driver.Options().WithSeed(identity.RandomSeed())
	m.form = m.form.withOptions(opts)
	return m.apply(opts)
}

func (m Model) copySelected() (tea.Model, tea.Cmd) {
	row := m.table.SelectedRow()
	if row == nil {
		return m, nil
	}
	if err := copyToClipboard(recordText(row)); err != nil {
		m.flash = "copy: " + err.Error()
		return m, clearFlashAfter()
	}
	m.flash = "copied!"
	return m, clearFlashAfter()
}

func (m Model) setFocus(f focusID) Model {
	m.focus = f
	m.form = m.form.focus(f)
	if f == focusTable {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
	return m
}

func (m Model) editingText() bool {
	return m.focus == focusRate || m.focus == focusSeed
}

// fetchIfNearBottom turns the table position into a scroll signal and, when
// the driver asks for a page, fills it off the event loop.
func (m Model) fetchIfNearBottom() tea.Cmd {
	distance := len(m.table.Rows()) - 1 - m.table.Cursor()
	req, ok := m.driver.NearBottom(distance)
	if !ok {
		return nil
	}
	gen := m.gen
	return func() tea.Msg {
		return batchMsg{batch: feed.Fill(gen, req)}
	}
}

// syncRows copies the driver's collection into the table. A reset also
// moves the cursor back to the first row.
func (m *Model) syncRows(reset bool) {
	m.table.SetRows(recordRows(m.driver.Records()))
	if reset {
		m.table.SetCursor(0)
	}
}

func (m *Model) resize() {
	h := m.height - chromeHeight
	if h < 3 {
		h = 3
	}
	m.table.SetHeight(h)
	m.table.SetColumns(recordColumns(m.width))
	if m.width > 0 {
		m.table.SetWidth(m.width)
	}
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func (m Model) View() string {
	header := zstyle.RenderHeader("zfake", "Random User Generator", zstyle.ZburnAccent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(m.help())

	s := "\n" + header + "\n" + sep + "\n"
	s += m.form.View(m.focus) + "\n"
	s += m.table.View() + "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusErr.Render(m.flash) + "\n"
	} else {
		s += "  " + zstyle.MutedText.Render(m.status()) + "\n"
	}

	return s + footer + "\n"
}

func (m Model) status() string {
	return statusLine(m.driver.Len(), m.driver.Cursor(), m.driver.Pending())
}

// help returns keybinding pairs for the focused control.
func (m Model) help() []zstyle.HelpPair {
	pairs := []zstyle.HelpPair{{Key: "tab", Desc: "next field"}}
	switch m.focus {
	case focusTable:
		pairs = append(pairs,
			zstyle.HelpPair{Key: "j/k", Desc: "scroll"},
			zstyle.HelpPair{Key: "enter", Desc: "copy row"},
			zstyle.HelpPair{Key: "r", Desc: "random seed"},
			zstyle.HelpPair{Key: "q", Desc: "quit"},
		)
	case focusRegion, focusSlider:
		pairs = append(pairs,
			zstyle.HelpPair{Key: "←/→", Desc: "change"},
			zstyle.HelpPair{Key: "r", Desc: "random seed"},
			zstyle.HelpPair{Key: "q", Desc: "quit"},
		)
	default:
		pairs = append(pairs,
			zstyle.HelpPair{Key: "ctrl+r", Desc: "random seed"},
			zstyle.HelpPair{Key: "ctrl+c", Desc: "quit"},
		)
	}
	return pairs
}

// Options returns the snapshot currently displayed.
func (m Model) Options() identity.Options {
	return m.driver.Options()
}

// Records returns the number of records currently displayed.
func (m Model) Records() int {
	return m.driver.Len()
}
