// Package ui holds the terminal progress view shown while balparse works
// through a directory.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"balparse/internal/driver"
)

// maxRows bounds the per-file list; busy and failing files are listed first.
const maxRows = 12

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	busyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type fileState int

const (
	fileQueued fileState = iota
	fileBusy
	fileOK
	fileFailed
)

type fileRow struct {
	path   string
	state  fileState
	stage  driver.Stage
	errors int
	cached bool
}

// tally is the running summary printed under the bar.
type tally struct {
	done, failed, cached, errors int
}

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	bar     progress.Model
	rows    []fileRow
	byPath  map[string]int
	phase   string
	sum     tally
	width   int
	done    bool
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model for a directory run over
// files. It quits when events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = busyStyle

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 60

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		rows:    make([]fileRow, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, f := range files {
		m.rows[i] = fileRow{path: f}
		m.byPath[f] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.Event(msg)), m.next())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = max(msg.Width-24, 10)
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

// apply folds one driver event into the model. Events for files outside
// the listing only update the run phase.
func (m *progressModel) apply(ev driver.Event) tea.Cmd {
	if ev.File == "" {
		m.phase = string(ev.Stage)
		return nil
	}
	i, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	row := &m.rows[i]
	if row.state == fileOK || row.state == fileFailed {
		return nil
	}
	row.stage = ev.Stage
	switch ev.Status {
	case driver.StatusWorking:
		row.state = fileBusy
	case driver.StatusDone, driver.StatusError:
		row.errors = ev.Errors
		row.cached = ev.Cached
		row.state = fileOK
		m.sum.done++
		if ev.Status == driver.StatusError {
			row.state = fileFailed
			m.sum.failed++
			m.sum.errors += ev.Errors
		}
		if ev.Cached {
			m.sum.cached++
		}
	}
	return m.bar.SetPercent(m.fraction())
}

// fraction counts finished files whole and busy files by stage.
func (m *progressModel) fraction() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	total := float64(m.sum.done)
	for _, r := range m.rows {
		if r.state != fileBusy {
			continue
		}
		switch r.stage {
		case driver.StageLex:
			total += 0.3
		case driver.StageParse:
			total += 0.6
		}
	}
	return total / float64(len(m.rows))
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	head := m.title
	if m.phase != "" && !m.done {
		head += " (" + m.phase + ")"
	}
	if m.done {
		b.WriteString(okStyle.Render("✓") + " " + titleStyle.Render(head))
	} else {
		b.WriteString(m.spinner.View() + " " + titleStyle.Render(head))
	}
	b.WriteString("\n\n")

	nameWidth := max(m.width-16, 20)
	shown := m.visibleRows()
	for _, i := range shown {
		r := m.rows[i]
		fmt.Fprintf(&b, "  %s %s\n", rowStatus(r), clipLeft(r.path, nameWidth))
	}
	if hidden := len(m.rows) - len(shown); hidden > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", hidden)))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	fmt.Fprintf(&b, " %d/%d\n  %s\n", m.sum.done, len(m.rows), m.summary())
	return b.String()
}

// visibleRows picks up to maxRows rows: failures and busy files first,
// then the rest in listing order.
func (m *progressModel) visibleRows() []int {
	if len(m.rows) <= maxRows {
		out := make([]int, len(m.rows))
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, maxRows)
	for _, want := range []fileState{fileFailed, fileBusy, fileQueued, fileOK} {
		for i, r := range m.rows {
			if len(out) == maxRows {
				return out
			}
			if r.state == want {
				out = append(out, i)
			}
		}
	}
	return out
}

func (m *progressModel) summary() string {
	parts := []string{fmt.Sprintf("%d parsed", m.sum.done)}
	if m.sum.failed > 0 {
		parts = append(parts, errStyle.Render(fmt.Sprintf("%d with errors (%d diagnostics)", m.sum.failed, m.sum.errors)))
	}
	if m.sum.cached > 0 {
		parts = append(parts, fmt.Sprintf("%d cached", m.sum.cached))
	}
	return strings.Join(parts, " · ")
}

func rowStatus(r fileRow) string {
	var label string
	var style lipgloss.Style
	switch r.state {
	case fileQueued:
		label, style = "queued", dimStyle
	case fileBusy:
		label, style = stageVerb(r.stage), busyStyle
	case fileOK:
		label, style = "ok", okStyle
		if r.cached {
			label = "cached"
		}
	case fileFailed:
		label, style = plural(r.errors, "error"), errStyle
	}
	return style.Render(fmt.Sprintf("%10s", label))
}

func stageVerb(s driver.Stage) string {
	switch s {
	case driver.StageLex:
		return "lexing"
	case driver.StageParse:
		return "parsing"
	}
	return "loading"
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// clipLeft keeps the end of a path, where the file name is.
func clipLeft(path string, width int) string {
	if width <= 0 || runewidth.StringWidth(path) <= width {
		return path
	}
	if width <= 1 {
		return runewidth.TruncateLeft(path, runewidth.StringWidth(path)-width, "")
	}
	return runewidth.TruncateLeft(path, runewidth.StringWidth(path)-width+1, "…")
}
