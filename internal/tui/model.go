// Package tui provides the Bubble Tea dictation interface and diagnostic rendering.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/dictee/internal/dictation"
	"github.com/verte-zerg/dictee/internal/logger"
	"github.com/verte-zerg/dictee/internal/model"
	statsPkg "github.com/verte-zerg/dictee/internal/stats"
)

// Model implements the Bubble Tea dictation practice UI.
type Model struct {
	config model.Config
	set    model.SentenceSet
	order  []int
	pos    int
	opts   []dictation.Option
	log    *logger.Logger

	input     textinput.Model
	hintWords int
	result    *dictation.AttemptResult
	attempts  int

	totalAttempts int
	firstTry      int
	done          bool

	width  int
	height int
}

// NewModel constructs a practice model over set in the given order.
func NewModel(cfg model.Config, set model.SentenceSet, order []int, log *logger.Logger, opts ...dictation.Option) *Model {
	input := textinput.New()
	input.Placeholder = "Type what you hear, then press Enter"
	input.Prompt = "> "
	input.Focus()
	m := &Model{
		config: cfg,
		set:    set,
		order:  order,
		opts:   opts,
		log:    log.With("set", set.Name),
		input:  input,
	}
	if len(order) == 0 {
		m.done = true
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(m.contentWidth()-len(m.input.Prompt)-1, 1)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.done {
				return m, tea.Quit
			}
			if m.solved() {
				m.advance()
				return m, nil
			}
			m.submit()
			return m, nil
		case tea.KeyCtrlN:
			if m.solved() {
				m.advance()
			}
			return m, nil
		}
	}
	if m.done {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	if m.done {
		body = m.renderSummary()
	} else {
		body = m.renderSentence()
	}
	if m.width == 0 || m.height == 0 {
		return body
	}
	content := lipgloss.NewStyle().Width(m.contentWidth()).Render(body)
	footer := footerStyle.Render(m.footerText())
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyLine := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return bodyLine + "\n" + footerLine
}

func (m *Model) contentWidth() int {
	return max(int(float64(m.width)*0.70), 1)
}

func (m *Model) reference() string {
	return m.set.Sentences[m.order[m.pos]]
}

func (m *Model) solved() bool {
	return m.result != nil && m.result.AllCorrect
}

func (m *Model) submit() {
	res := dictation.Compare(m.input.Value(), m.reference(), m.opts...)
	m.result = &res
	m.attempts++
	m.totalAttempts++
	metrics := statsPkg.AttemptMetrics(res)
	m.log.Debug("attempt scored",
		"sentence", m.order[m.pos],
		"attempt", m.attempts,
		"all_correct", res.AllCorrect,
		"score", metrics.Score,
	)
	if res.AllCorrect {
		if m.attempts == 1 {
			m.firstTry++
		}
		return
	}
	m.hintWords = min(m.hintWords+m.config.HintStep, hintWordCount(m.reference()))
}

func (m *Model) advance() {
	m.pos++
	m.result = nil
	m.attempts = 0
	m.hintWords = 0
	m.input.SetValue("")
	if m.pos >= len(m.order) {
		m.done = true
		m.log.Info("set completed", "sentences", len(m.order), "first_try", m.firstTry, "attempts", m.totalAttempts)
	}
}

func (m *Model) renderSentence() string {
	lines := []string{
		fmt.Sprintf("Sentence %d/%d", m.pos+1, len(m.order)),
		"",
		pendingStyle.Render(maskHint(m.reference(), m.hintWords)),
		"",
		m.input.View(),
	}
	if m.result != nil {
		lines = append(lines, "", RenderAttempt(*m.result, m.contentWidth()))
		if m.result.AllCorrect {
			lines = append(lines, "", successStyle.Render("Correct! Press Enter for the next sentence."))
		} else if len(m.result.Unmatched) > 0 {
			lines = append(lines, "", pendingStyle.Render(fmt.Sprintf("%d word(s) missing", len(m.result.Unmatched))))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderSummary() string {
	if len(m.order) == 0 {
		return "This set has no sentences."
	}
	return strings.Join([]string{
		successStyle.Render("Set complete"),
		"",
		fmt.Sprintf("Sentences: %d", len(m.order)),
		fmt.Sprintf("Correct on first try: %d", m.firstTry),
		fmt.Sprintf("Attempts: %d", m.totalAttempts),
		"",
		"Press Enter to exit.",
	}, "\n")
}

func (m *Model) footerText() string {
	segments := []string{m.set.Name}
	if !m.done {
		segments = append(segments, fmt.Sprintf("Attempts %d", m.attempts))
	}
	segments = append(segments, fmt.Sprintf("First try %d/%d", m.firstTry, len(m.order)), "Esc quit")
	return strings.Join(segments, "  ")
}
