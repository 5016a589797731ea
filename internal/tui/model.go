package tui

import (
	"fmt"
	"strings"
	"time"

	"wordup/internal/pipeline"

	tea "github.com/charmbracelet/bubbletea"
)

type Config struct {
	StatsCh  <-chan pipeline.Stats
	ResultCh <-chan *pipeline.Result
	Stop     func()
}

type statsMsg pipeline.Stats
type statsClosedMsg struct{}
type resultMsg struct{ result *pipeline.Result }
type resultClosedMsg struct{}

func listenStats(ch <-chan pipeline.Stats) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return statsClosedMsg{}
		}
		return statsMsg(s)
	}
}

func listenResult(ch <-chan *pipeline.Result) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return resultClosedMsg{}
		}
		return resultMsg{result: r}
	}
}

type phaseEntry struct {
	name  string
	words int
	at    time.Time
}

type model struct {
	cfg Config

	phases []phaseEntry
	done   bool
	final  int
	masks  int
	rules  int

	statsOpen  bool
	resultOpen bool

	start time.Time
}

func NewModel(cfg Config) model {
	return model{
		cfg:        cfg,
		statsOpen:  true,
		resultOpen: true,
		start:      time.Now(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		listenStats(m.cfg.StatsCh),
		listenResult(m.cfg.ResultCh),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.cfg.Stop != nil {
				m.cfg.Stop()
			}
			return m, tea.Quit
		}
	case statsMsg:
		m.phases = append(m.phases, phaseEntry{
			name:  msg.Phase,
			words: msg.Words,
			at:    msg.Timestamp,
		})
		return m, listenStats(m.cfg.StatsCh)

	case statsClosedMsg:
		m.statsOpen = false
		if !m.resultOpen {
			return m, tea.Quit
		}
		return m, nil

	case resultMsg:
		if msg.result != nil {
			m.done = true
			m.final = msg.result.Final.Len()
			m.masks = len(msg.result.Masks)
			m.rules = len(msg.result.Rules)
		}
		return m, listenResult(m.cfg.ResultCh)

	case resultClosedMsg:
		m.resultOpen = false
		if !m.statsOpen {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Wordlist Synthesis (q to quit)\n")
	fmt.Fprintf(&b, "Elapsed: %s\n\n", time.Since(m.start).Truncate(time.Second))

	for _, p := range m.phases {
		fmt.Fprintf(&b, "  %-14s %8d words  (%s)\n",
			p.name, p.words, p.at.Sub(m.start).Truncate(time.Millisecond))
	}

	if m.done {
		fmt.Fprintf(&b, "\nDone: %d final words | %d masks | %d rules\n",
			m.final, m.masks, m.rules)
	} else {
		b.WriteString("\nWorking...\n")
	}
	return b.String()
}
