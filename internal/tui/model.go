package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"transaction-analyzer/internal/dto"
	apperrors "transaction-analyzer/internal/errors"
	"transaction-analyzer/internal/models"
	"transaction-analyzer/internal/services"
	"transaction-analyzer/internal/validation"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultPollInterval is how often the view re-reads controller state.
const DefaultPollInterval = 200 * time.Millisecond

// chromeHeight is the number of lines the view spends outside the table.
const chromeHeight = 12

type mode int

const (
	modeBrowse mode = iota
	modeUpload
	modeConfirmDeleteAll
)

// Model is the root Bubble Tea model of the terminal dashboard. It owns no
// dashboard state of its own: every frame renders the controller's latest
// snapshot, and every key that starts an action becomes a tea.Cmd.
type Model struct {
	ctx          context.Context
	controller   services.DashboardControllerInterface
	keys         KeyMap
	help         help.Model
	spinner      spinner.Model
	input        textinput.Model
	pollInterval time.Duration
	readFile     func(string) ([]byte, error)

	state  models.DashboardState
	mode   mode
	cursor int
	offset int
	width  int
	height int
	// status is a local message that never reached the controller, such as
	// an unreadable file path or a refused action.
	status string
}

// ModelOption configures a Model during construction.
type ModelOption func(*Model)

// WithPollInterval sets how often controller state is re-read.
func WithPollInterval(d time.Duration) ModelOption {
	return func(m *Model) {
		if d > 0 {
			m.pollInterval = d
		}
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) ModelOption {
	return func(m *Model) { m.keys = k }
}

// WithFileReader sets how upload paths are read.
func WithFileReader(fn func(string) ([]byte, error)) ModelOption {
	return func(m *Model) { m.readFile = fn }
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return s
}

func newPathInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "path/to/transactions.csv"
	in.Prompt = "CSV file: "
	in.CharLimit = 4096
	return in
}

// NewModel creates a dashboard Model bound to controller. ctx is passed to
// every action the dashboard starts.
func NewModel(ctx context.Context, controller services.DashboardControllerInterface, opts ...ModelOption) Model {
	m := Model{
		ctx:          ctx,
		controller:   controller,
		keys:         DefaultKeyMap,
		help:         help.New(),
		spinner:      newSpinner(),
		input:        newPathInput(),
		pollInterval: DefaultPollInterval,
		readFile:     os.ReadFile,
		state:        controller.State(),
	}
	for _, o := range opts {
		o(&m)
	}
	return m
}

// Init mounts the dashboard and starts polling.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		mountCmd(m.ctx, m.controller),
		pollCmd(m.pollInterval),
		m.spinner.Tick,
	)
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampCursor()
		return m, nil

	case pollMsg:
		return m, tea.Batch(snapshotCmd(m.controller), pollCmd(m.pollInterval))

	case stateMsg:
		m.setState(msg.state)
		return m, nil

	case actionDoneMsg:
		if msg.err != nil && apperrors.IsRejection(msg.err) {
			m.status = apperrors.GetErrorMessage(apperrors.CodeFor(msg.err))
		}
		m.setState(m.controller.State())
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.mode {
		case modeUpload:
			return m.handleUploadKey(msg)
		case modeConfirmDeleteAll:
			return m.handleConfirmKey(msg)
		default:
			return m.handleBrowseKey(msg)
		}
	}

	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		next := models.TabPattern
		if m.state.ActiveTab == models.TabPattern {
			next = models.TabMerchant
		}
		return m.switchTab(next)

	case key.Matches(msg, m.keys.MerchantTab):
		return m.switchTab(models.TabMerchant)

	case key.Matches(msg, m.keys.PatternTab):
		return m.switchTab(models.TabPattern)

	case key.Matches(msg, m.keys.Upload):
		if m.state.IsBusy(models.FlagUploading) {
			return m, nil
		}
		m.mode = modeUpload
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Analyze):
		flag := models.FlagAnalyzingMerchant
		if m.state.ActiveTab == models.TabPattern {
			flag = models.FlagDetectingPatterns
		}
		if m.state.IsBusy(flag) {
			return m, nil
		}
		return m, analyzeCmd(m.ctx, m.controller, m.state.ActiveTab)

	case key.Matches(msg, m.keys.Delete):
		if m.state.ActiveTab != models.TabMerchant {
			return m, nil
		}
		tx, ok := m.selectedTransaction()
		if !ok || m.state.IsPending(tx.ID) {
			return m, nil
		}
		return m, deleteTransactionCmd(m.ctx, m.controller, tx.ID)

	case key.Matches(msg, m.keys.DeleteAll):
		if !m.state.CanDeleteAll {
			return m, nil
		}
		m.mode = modeConfirmDeleteAll
		return m, nil
	}

	return m, nil
}

func (m Model) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		path := strings.TrimSpace(m.input.Value())
		m.mode = modeBrowse
		m.input.Blur()
		if path == "" {
			return m, nil
		}
		if !validation.IsCSVFileName(path) {
			m.status = apperrors.GetErrorMessage(apperrors.ValidationInvalidFile)
			return m, nil
		}
		data, err := m.readFile(path)
		if err != nil {
			m.status = fmt.Sprintf("Could not read %s: %v", path, err)
			return m, nil
		}
		file := dto.UploadFile{Name: filepath.Base(path), Data: data}
		return m, uploadCmd(m.ctx, m.controller, file)

	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = modeBrowse
		return m, deleteAllCmd(m.ctx, m.controller)
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, nil
}

// switchTab moves controller focus on the update loop, so the last key
// pressed decides the tab. Only the load runs in the background; pressing
// the current tab's key retries a load that failed.
func (m Model) switchTab(tab models.Tab) (tea.Model, tea.Cmd) {
	if err := m.controller.SelectTab(tab); err != nil {
		m.status = apperrors.GetErrorMessage(apperrors.CodeFor(err))
		return m, nil
	}
	if tab != m.state.ActiveTab {
		m.state.ActiveTab = tab
		m.cursor = 0
		m.offset = 0
	}
	return m, loadTabCmd(m.ctx, m.controller, tab)
}

func (m *Model) setState(state models.DashboardState) {
	if state.ActiveTab != m.state.ActiveTab {
		m.cursor = 0
		m.offset = 0
	}
	m.state = state
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := m.state.ActiveCount()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	rows := m.visibleRows()
	if rows <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// visibleRows is the table height, or 0 before the terminal size is known.
func (m Model) visibleRows() int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-chromeHeight, 1)
}

func (m Model) selectedTransaction() (models.Transaction, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Transactions) {
		return models.Transaction{}, false
	}
	return m.state.Transactions[m.cursor], true
}
