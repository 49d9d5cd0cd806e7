package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/tinytelemetry/statekit/internal/counter"
	"github.com/tinytelemetry/statekit/internal/model"
	"github.com/tinytelemetry/statekit/internal/schedule"
)

const timerChartHeight = 6

// TimerPage shows an interval counter driven by Bubble Tea ticks, plus how
// many ticks each finished run produced.
type TimerPage struct {
	keys  KeyMap
	sched *schedule.Program
	timer *counter.Interval

	sessions    []model.Session
	historySize int
	runStart    int64
}

// NewTimerPage creates an inactive timer that ticks every interval and keeps
// the last historySize finished runs.
func NewTimerPage(interval time.Duration, historySize int) *TimerPage {
	if historySize <= 0 {
		historySize = model.DefaultHistorySize
	}
	sched := schedule.NewProgram()
	p := &TimerPage{
		keys:        DefaultKeyMap(),
		sched:       sched,
		timer:       counter.NewInterval(sched, interval),
		historySize: historySize,
	}
	p.timer.Subscribe(p.observe)
	return p
}

func (p *TimerPage) ID() string    { return "timer" }
func (p *TimerPage) Title() string { return "Timer" }

func (p *TimerPage) Init() tea.Cmd { return nil }

// State returns the timer snapshot.
func (p *TimerPage) State() model.TimerState { return p.timer.State() }

// Sessions returns the finished runs, oldest first.
func (p *TimerPage) Sessions() []model.Session { return p.sessions }

// observe runs for every toggle and tick.
func (p *TimerPage) observe(s model.TimerState) {
	switch {
	case s.Active && s.Count == p.runStart:
		log.Info().Int64("count", s.Count).Msg("timer started")
	case s.Active:
		log.Debug().Int64("count", s.Count).Msg("timer tick")
	default:
		run := model.Session{Start: p.runStart, Ticks: s.Count - p.runStart}
		p.sessions = append(p.sessions, run)
		if over := len(p.sessions) - p.historySize; over > 0 {
			p.sessions = p.sessions[over:]
		}
		log.Info().Int64("count", s.Count).Int64("ticks", run.Ticks).Msg("timer stopped")
	}
}

func (p *TimerPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case schedule.FireMsg:
		return p.sched.Handle(msg)
	case tea.KeyMsg:
		if key.Matches(msg, p.keys.Toggle) {
			if !p.timer.Active() {
				p.runStart = p.timer.Count()
			}
			p.timer.Toggle()
			return p.sched.Flush()
		}
	}
	return nil
}

func (p *TimerPage) View(width, height int) string {
	var headline string
	if p.timer.Active() {
		headline = headlineStyle().Render(fmt.Sprintf("%d", p.timer.Count()))
	} else {
		headline = headlineStyle().Foreground(ColorMuted).BorderForeground(ColorMuted).Render("Timer Stopped")
	}

	lines := []string{
		headline,
		mutedStyle().Render(fmt.Sprintf("every %s", p.timer.Every())),
		"",
	}
	if len(p.sessions) > 0 {
		lines = append(lines, p.renderSessions(min(width-4, 2*p.historySize+4)))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderSessions draws one bar per finished run.
func (p *TimerPage) renderSessions(width int) string {
	if width < 4 {
		return ""
	}
	bc := barchart.New(width, timerChartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)
	bar := lipgloss.NewStyle().Foreground(ColorAccent).Background(ColorAccent)
	for _, s := range p.sessions {
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: "ticks", Value: float64(s.Ticks), Style: bar},
			},
		})
	}
	bc.Draw()

	last := p.sessions[len(p.sessions)-1]
	legend := mutedStyle().Render(fmt.Sprintf("%d runs, last %d ticks", len(p.sessions), last.Ticks))
	return lipgloss.JoinVertical(lipgloss.Center, bc.View(), legend)
}

func (p *TimerPage) Bindings() []key.Binding {
	return []key.Binding{p.keys.Toggle}
}

func (p *TimerPage) Dispose() {
	p.timer.Close()
}
