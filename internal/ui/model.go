package ui

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/kamus/internal/navigator"
	"github.com/faizmokh/kamus/internal/render"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// reservedRows covers the title, navigation line, status line, help and spacing.
	reservedRows = 8
	pickerRows   = 7
)

// Model owns Bubble Tea state for the dictionary browser.
type Model struct {
	state    *navigator.State
	renderer render.Renderer
	logger   *slog.Logger
	theme    Theme
	keys     keyMap
	help     help.Model

	viewport  viewport.Model
	wordInput textinput.Model

	mode      mode
	days      []int
	dayCursor int

	width  int
	height int

	statusLine string
	errorLine  string
}

type mode uint8

const (
	modeBrowse mode = iota
	modePickDay
	modeWordInput
)

// NewModel seeds a Bubble Tea model with the navigation state and the renderer
// used for entry bodies.
func NewModel(state *navigator.State, renderer render.Renderer, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 6
	input.Width = 8

	m := Model{
		state:     state,
		renderer:  renderer,
		logger:    logger,
		theme:     DefaultTheme(lipgloss.DefaultRenderer()),
		keys:      defaultKeyMap(),
		help:      help.New(),
		wordInput: input,
		mode:      modeBrowse,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.viewport = viewport.New(m.bodySize())
	m = m.fitRenderer()
	return m.show(state.View())
}

// Init implements tea.Model. The table is already loaded, so there is nothing to fetch.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update wires TUI state transitions from user input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		if m.mode == modeWordInput {
			var cmd tea.Cmd
			m.wordInput, cmd = m.wordInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modePickDay:
		return m.handlePickerKey(msg)
	case modeWordInput:
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		return m.show(m.state.Previous()), nil
	case key.Matches(msg, m.keys.Next):
		return m.show(m.state.Next()), nil
	case key.Matches(msg, m.keys.Day):
		return m.openDayPicker(), nil
	case key.Matches(msg, m.keys.Word):
		return m.openWordInput()
	}

	// Anything else scrolls the entry.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.dayCursor > 0 {
			m.dayCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.dayCursor < len(m.days)-1 {
			m.dayCursor++
		}
	case key.Matches(msg, m.keys.Select):
		day := m.days[m.dayCursor]
		m.mode = modeBrowse
		m = m.show(m.state.SelectDay(day))
		m.statusLine = fmt.Sprintf("Jumped to day %d.", day)
	case key.Matches(msg, m.keys.Cancel), msg.String() == "q":
		m.mode = modeBrowse
		m.statusLine = "Day selection cancelled."
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		m.wordInput.Blur()
		m.statusLine = "Word selection cancelled."
		m.errorLine = ""
		return m, nil
	case key.Matches(msg, m.keys.Select):
		return m.submitWordNumber()
	}

	var cmd tea.Cmd
	m.wordInput, cmd = m.wordInput.Update(msg)
	return m, cmd
}

func (m Model) openDayPicker() Model {
	day, _ := m.state.Coordinates()
	m.days = m.state.Days()
	m.dayCursor = max(0, slices.Index(m.days, day))
	m.mode = modePickDay
	m.statusLine = ""
	m.errorLine = ""
	return m
}

func (m Model) openWordInput() (tea.Model, tea.Cmd) {
	day, word := m.state.Coordinates()
	m.wordInput.SetValue(strconv.Itoa(word))
	m.wordInput.CursorEnd()
	m.wordInput.Placeholder = fmt.Sprintf("1-%d", m.state.GroupSize(day))
	m.mode = modeWordInput
	m.statusLine = ""
	m.errorLine = ""
	cmd := m.wordInput.Focus()
	return m, cmd
}

func (m Model) submitWordNumber() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.wordInput.Value())
	num, err := strconv.Atoi(value)
	if err != nil {
		m.errorLine = fmt.Sprintf("Invalid word number %q (expected a whole number)", value)
		return m, nil
	}

	day, _ := m.state.Coordinates()
	m.mode = modeBrowse
	m.wordInput.Blur()
	m = m.show(m.state.SelectWordNumber(day, num))
	return m, nil
}

// show renders the entry of view into the viewport. Coordinates shown on screen
// are derived again in View, never cached here.
func (m Model) show(view navigator.Snapshot) Model {
	body, err := m.renderer.Render(view.Entry.Content)
	if err != nil {
		m.logger.Warn("render entry", slog.Int("position", view.Position), slog.String("error", err.Error()))
		m.errorLine = fmt.Sprintf("Render failed: %v", err)
		body = view.Entry.Content
	} else {
		m.errorLine = ""
	}
	m.statusLine = ""
	m.viewport.SetContent(body)
	m.viewport.GotoTop()

	m.logger.Debug("navigate",
		slog.Int("position", view.Position),
		slog.Int("day", view.Day),
		slog.Int("word", view.WordNumber),
	)
	return m
}

func (m Model) resize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.viewport.Width, m.viewport.Height = m.bodySize()
	m.help.Width = msg.Width

	m = m.fitRenderer()
	body, err := m.renderer.Render(m.state.View().Entry.Content)
	if err != nil {
		m.logger.Warn("render entry after resize", slog.String("error", err.Error()))
		return m
	}
	offset := m.viewport.YOffset
	m.viewport.SetContent(body)
	m.viewport.SetYOffset(offset)
	return m
}

// fitRenderer lays width-dependent renderers out for the current viewport.
func (m Model) fitRenderer() Model {
	r, ok := m.renderer.(render.Resizable)
	if !ok {
		return m
	}
	resized, err := r.WithWidth(m.viewport.Width)
	if err != nil {
		m.logger.Warn("resize renderer", slog.Int("width", m.viewport.Width), slog.String("error", err.Error()))
		return m
	}
	m.renderer = resized
	return m
}

func (m Model) bodySize() (int, int) {
	frameW, frameH := m.theme.cardFrame()
	return max(10, m.width-frameW), max(3, m.height-frameH-reservedRows)
}

// View renders the frame.
func (m Model) View() string {
	current := m.state.View()

	sections := []string{
		m.theme.Title.Render("Dictionary"),
		m.theme.Card.Render(m.viewport.View()),
		m.theme.Nav.Render(fmt.Sprintf("Day %d  ·  Word %d of %d  ·  Entry %d of %d",
			current.Day, current.WordNumber, current.GroupSize, current.Position+1, current.Total)),
	}

	var bindings []key.Binding
	switch m.mode {
	case modePickDay:
		sections = append(sections, m.pickerView())
		bindings = m.keys.pickerHelp()
	case modeWordInput:
		sections = append(sections, fmt.Sprintf("Select Word (Total %d)\n%s", current.GroupSize, m.wordInput.View()))
		bindings = m.keys.inputHelp()
	default:
		bindings = m.keys.browseHelp()
	}

	if m.errorLine != "" {
		sections = append(sections, m.theme.Alert.Render("! "+m.errorLine))
	} else if m.statusLine != "" {
		sections = append(sections, m.statusLine)
	}

	sections = append(sections, m.help.ShortHelpView(bindings))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) pickerView() string {
	var b strings.Builder
	b.WriteString("Select Day\n")

	start := max(0, min(m.dayCursor-pickerRows/2, len(m.days)-pickerRows))
	end := min(len(m.days), start+pickerRows)
	for i := start; i < end; i++ {
		day := m.days[i]
		label := fmt.Sprintf("Day %d (%d word%s)", day, m.state.GroupSize(day), plural(m.state.GroupSize(day)))
		if i == m.dayCursor {
			b.WriteString(m.theme.Selected.Render(label))
		} else {
			b.WriteString(m.theme.Muted.Render(label))
		}
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
