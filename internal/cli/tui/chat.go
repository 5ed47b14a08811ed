package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Raeus1901/wine-bot/internal/cli/controller"
)

// UI configuration constants
const (
	defaultInputWidth     = 100
	defaultViewportWidth  = 100
	defaultViewportHeight = 30
	defaultWindowWidth    = 100
	defaultWindowHeight   = 40
	inputCharLimit        = 1000
	inputHeightReserved   = 2
	statusHeightReserved  = 4
	minContentHeight      = 10
)

// Style definitions
var (
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boldStyle     = lipgloss.NewStyle().Bold(true)
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("161"))
	systemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	optionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("161")).Padding(0, 1)
)

// ChatProgram encapsulates the chat TUI program
type ChatProgram struct {
	model chatModel
}

// NewChatProgram wires a controller to a fresh TUI model. The transport
// is whatever API shape the caller configured.
func NewChatProgram(mode controller.Mode, transport controller.Transport, logger *slog.Logger) *ChatProgram {
	rend := newRenderer()
	ctrl := controller.New(mode, transport, rend, logger)
	return &ChatProgram{model: initialModel(ctrl, rend)}
}

// Run starts the chat TUI program
func (p *ChatProgram) Run() error {
	program := tea.NewProgram(p.model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// chatModel is the Bubble Tea model containing all chat interface state
type chatModel struct {
	ctrl *controller.Controller
	rend *renderer

	// UI components
	input       textinput.Model
	contentView viewport.Model

	// Latest snapshot of the controller-driven view state
	state        viewState
	optionCursor int

	// Window dimensions
	width  int
	height int
}

// initialModel creates the initial chat model
func initialModel(ctrl *controller.Controller, rend *renderer) chatModel {
	input := textinput.New()
	input.Placeholder = "Describe the wine you feel like..."
	input.Focus()
	input.CharLimit = inputCharLimit
	input.Width = defaultInputWidth
	input.Prompt = ""

	contentViewport := viewport.New(defaultViewportWidth, defaultViewportHeight)
	contentViewport.SetContent("")

	return chatModel{
		ctrl:        ctrl,
		rend:        rend,
		input:       input,
		contentView: contentViewport,
		width:       defaultWindowWidth,
		height:      defaultWindowHeight,
	}
}

// stateChangedMsg signals that the controller updated the view state.
type stateChangedMsg struct{}

// Init initializes the model (Bubble Tea interface)
func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForUpdate(), m.startSession())
}

func (m chatModel) startSession() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctrl.Start(context.Background())
		return nil
	}
}

func (m chatModel) waitForUpdate() tea.Cmd {
	updates := m.rend.updates
	return func() tea.Msg {
		<-updates
		return stateChangedMsg{}
	}
}

func (m chatModel) submit(text string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctrl.Submit(context.Background(), text)
		return nil
	}
}

func (m chatModel) reset() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctrl.Reset(context.Background())
		return nil
	}
}

// Update processes messages and updates the model (Bubble Tea interface)
func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyPress(msg)...)

	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)

	case stateChangedMsg:
		m.applySnapshot()
		cmds = append(cmds, m.waitForUpdate())
	}

	if !m.state.busy {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// applySnapshot pulls the latest controller state into the model.
func (m *chatModel) applySnapshot() {
	prevOptions := m.state.options
	m.state = m.rend.snapshot()

	if m.state.clearInput {
		m.input.Reset()
	}
	if !equalOptions(prevOptions, m.state.options) {
		m.optionCursor = 0
	}

	m.refreshContent()
}

func equalOptions(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// handleKeyPress handles keyboard input
func (m *chatModel) handleKeyPress(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		cmds = append(cmds, tea.Quit)

	case tea.KeyCtrlR:
		if !m.state.busy {
			cmds = append(cmds, m.reset())
		}

	case tea.KeyEnter:
		if m.state.busy {
			break
		}
		text := strings.TrimSpace(m.input.Value())
		if text != "" {
			cmds = append(cmds, m.submit(text))
		} else if len(m.state.options) > 0 {
			cmds = append(cmds, m.submit(m.state.options[m.optionCursor]))
		}

	case tea.KeyTab:
		if n := len(m.state.options); n > 0 {
			m.optionCursor = (m.optionCursor + 1) % n
		}

	case tea.KeyShiftTab:
		if n := len(m.state.options); n > 0 {
			m.optionCursor = (m.optionCursor + n - 1) % n
		}

	case tea.KeyUp:
		m.contentView.LineUp(1)

	case tea.KeyDown:
		m.contentView.LineDown(1)

	case tea.KeyPgUp:
		m.contentView.ViewUp()

	case tea.KeyPgDown:
		m.contentView.ViewDown()
	}

	return cmds
}

// handleWindowResize handles window size changes
func (m *chatModel) handleWindowResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	contentHeight := msg.Height - inputHeightReserved - statusHeightReserved
	if contentHeight < minContentHeight {
		contentHeight = minContentHeight
	}

	m.contentView.Width = msg.Width
	m.contentView.Height = contentHeight
	m.input.Width = msg.Width - 3

	m.refreshContent()
}

// refreshContent rebuilds the viewport content from the transcript.
func (m *chatModel) refreshContent() {
	var b strings.Builder
	for i, line := range m.state.lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderSender(line.sender))
		b.WriteString("\n")
		b.WriteString(line.text)
		b.WriteString("\n")
	}

	display := b.String()
	if m.width > 0 {
		display = wrapText(display, m.width)
	}

	m.contentView.SetContent(display)
	m.contentView.GotoBottom()
}

func renderSender(sender string) string {
	switch sender {
	case controller.SenderAI:
		return accentStyle.Render(sender)
	case controller.SenderYou:
		return boldStyle.Render(sender)
	default:
		return systemStyle.Render(sender)
	}
}

// wrapText applies auto-wrapping to text, handling wide character widths
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 10 {
		return text
	}

	lines := strings.Split(text, "\n")
	var result strings.Builder

	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(wrapLine(line, maxWidth))
	}

	return result.String()
}

// wrapLine wraps a single line of text by display width
func wrapLine(line string, maxWidth int) string {
	if runewidth.StringWidth(line) <= maxWidth {
		return line
	}

	var result strings.Builder
	var currentLine strings.Builder
	currentWidth := 0

	for _, r := range line {
		runeW := runewidth.RuneWidth(r)

		if currentWidth+runeW > maxWidth && currentWidth > 0 {
			result.WriteString(currentLine.String())
			result.WriteString("\n")
			currentLine.Reset()
			currentWidth = 0
		}

		currentLine.WriteRune(r)
		currentWidth += runeW
	}

	if currentLine.Len() > 0 {
		result.WriteString(currentLine.String())
	}

	return result.String()
}

// View renders the UI (Bubble Tea interface)
func (m chatModel) View() string {
	status := dimStyle.Render(fmt.Sprintf("🍷 Wine Advisor • %s mode", m.ctrl.Mode()))
	if m.state.busy {
		status += dimStyle.Render(" • waiting for reply...")
	}

	content := m.contentView.View()

	optionsRow := ""
	if len(m.state.options) > 0 {
		parts := make([]string, len(m.state.options))
		for i, opt := range m.state.options {
			if i == m.optionCursor {
				parts[i] = selectedStyle.Render(opt)
			} else {
				parts[i] = optionStyle.Render(opt)
			}
		}
		optionsRow = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	var inputView string
	if m.state.busy {
		inputView = dimStyle.Render("> waiting for reply...")
	} else {
		inputView = promptStyle.Render("> ") + m.input.View()
	}

	help := ""
	if !m.state.busy {
		help = dimStyle.Render("Enter send • Tab pick option • Ctrl+R reset • Esc quit")
	}

	parts := []string{status, "", content, ""}
	if optionsRow != "" {
		parts = append(parts, optionsRow)
	}
	parts = append(parts, inputView)
	if help != "" {
		parts = append(parts, help)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
