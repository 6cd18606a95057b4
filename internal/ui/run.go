package ui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"oxygen/internal/driver"
)

// RunProgress shows the progress view on out while work runs. work gets a
// ProgressFunc to pass into driver.Options; the view closes when work returns.
func RunProgress(ctx context.Context, out io.Writer, title string, files []string, work func(driver.ProgressFunc) error) error {
	events := make(chan driver.ProgressEvent, len(files)*2+1)
	program := tea.NewProgram(NewProgressModel(title, files, events),
		tea.WithOutput(out), tea.WithInput(nil), tea.WithContext(ctx))

	workErr := make(chan error, 1)
	go func() {
		defer close(events)
		workErr <- work(func(ev driver.ProgressEvent) { events <- ev })
	}()

	if _, err := program.Run(); err != nil {
		// окно могло закрыться раньше; дожидаемся работы, чтобы не терять ошибку
		if werr := <-workErr; werr != nil {
			return werr
		}
		return err
	}
	return <-workErr
}
