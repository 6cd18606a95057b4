package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"oxygen/internal/driver"
)

const statusColumn = 12

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	statusColor = map[driver.ProgressStatus]lipgloss.Color{
		driver.StatusQueued:  "7",
		driver.StatusWorking: "6",
		driver.StatusDone:    "2",
		driver.StatusError:   "1",
	}
)

// row is one file line of the view.
type row struct {
	path   string
	status driver.ProgressStatus
	errs   int
}

type progressModel struct {
	title  string
	events <-chan driver.ProgressEvent

	spin spinner.Model
	bar  progress.Model

	rows   []row
	byPath map[string]int

	finished, failed int
	width            int
	closed           bool
}

type eventMsg driver.ProgressEvent
type doneMsg struct{}

// NewProgressModel builds the Bubble Tea model for a directory run over
// files. It quits once events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.ProgressEvent) tea.Model {
	m := &progressModel{
		title:  title,
		events: events,
		spin:   spinner.New(),
		bar:    progress.New(progress.WithDefaultGradient()),
		rows:   make([]row, len(files)),
		byPath: make(map[string]int, len(files)),
		width:  80,
	}
	m.spin.Spinner = spinner.Dot
	m.bar.Width = 76
	m.spin.Style = lipgloss.NewStyle().Foreground(statusColor[driver.StatusWorking])
	for i, path := range files {
		m.rows[i].path = path
		m.byPath[path] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.waitEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.ProgressEvent(msg)), m.waitEvent())
	case doneMsg:
		m.closed = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case spinner.TickMsg:
		if !m.closed {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.header()))
	b.WriteString("\n\n")

	nameWidth := max(m.width-statusColumn-4, 20)
	for _, r := range m.rows {
		label := r.status.String()
		if r.errs > 0 {
			label = fmt.Sprintf("%d errors", r.errs)
		}
		cell := lipgloss.NewStyle().Foreground(statusColor[r.status]).Render(fmt.Sprintf("%*s", statusColumn, label))
		fmt.Fprintf(&b, "  %s %s\n", cell, truncate(r.path, nameWidth))
	}

	b.WriteByte('\n')
	if m.closed {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteByte('\n')
	return b.String()
}

func (m *progressModel) header() string {
	counts := fmt.Sprintf("%d/%d", m.finished, len(m.rows))
	if m.failed > 0 {
		counts += fmt.Sprintf(", %d with errors", m.failed)
	}
	lead := m.spin.View()
	if m.closed {
		lead = "done:"
	}
	return fmt.Sprintf("%s %s (%s)", lead, m.title, counts)
}

func (m *progressModel) waitEvent() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return doneMsg{}
	}
}

func (m *progressModel) apply(ev driver.ProgressEvent) tea.Cmd {
	i, ok := m.byPath[ev.Path]
	if !ok {
		return nil
	}
	m.rows[i].status, m.rows[i].errs = ev.Status, ev.Errors
	if !ev.Finished() {
		return nil
	}
	m.finished++
	if ev.Status == driver.StatusError {
		m.failed++
	}
	return m.bar.SetPercent(m.percent())
}

// percent: готовые файлы целиком, файлы в работе наполовину.
func (m *progressModel) percent() float64 {
	if len(m.rows) == 0 {
		return 1
	}
	var sum float64
	for _, r := range m.rows {
		switch r.status {
		case driver.StatusWorking:
			sum += 0.5
		case driver.StatusDone, driver.StatusError:
			sum++
		}
	}
	return sum / float64(len(m.rows))
}

// truncate shortens value to width terminal cells, with "..." when there is
// room for it.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	tail := "..."
	if width <= len(tail) {
		tail = ""
	}
	return runewidth.Truncate(value, width, tail)
}
