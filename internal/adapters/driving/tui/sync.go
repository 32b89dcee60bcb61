package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/messages"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/styles"
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
)

// SyncModel renders a progress bar for a sync run executing on another
// goroutine. It consumes progress updates from a channel and exits when
// the done channel delivers the final stats.
type SyncModel struct {
	styles *styles.Styles
	bar    progress.Model

	updates <-chan driving.Progress
	done    <-chan messages.SyncFinished

	percent  float64
	latest   driving.Progress
	stats    domain.SyncStats
	err      error
	finished bool
}

// Ensure SyncModel implements tea.Model.
var _ tea.Model = (*SyncModel)(nil)

// NewSyncModel creates a progress view fed by the given channels.
func NewSyncModel(updates <-chan driving.Progress, done <-chan messages.SyncFinished) *SyncModel {
	return &SyncModel{
		styles: styles.DefaultStyles(),
		bar:     progress.New(progress.WithDefaultGradient()),
		updates: updates,
		done:    done,
	}
}

// Init implements tea.Model.
func (m *SyncModel) Init() tea.Cmd {
	return tea.Batch(
		waitForProgress(m.updates),
		waitForDone(m.done),
	)
}

// Update implements tea.Model.
func (m *SyncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 8
		return m, nil

	case messages.SyncProgressed:
		m.latest = driving.Progress{Accumulated: msg.Accumulated, Max: msg.Max}
		if msg.Max > 0 {
			m.percent = float64(msg.Accumulated) / float64(msg.Max)
		}
		return m, waitForProgress(m.updates)

	case messages.SyncFinished:
		m.finished = true
		m.stats = msg.Stats
		m.err = msg.Err
		if msg.Err == nil {
			m.percent = 1
		}
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m *SyncModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Syncing sent mail"))
	b.WriteString("\n\n")
	b.WriteString(m.bar.ViewAs(m.percent))
	b.WriteString("\n")

	if m.latest.Max > 0 {
		b.WriteString(m.styles.Muted.Render(
			fmt.Sprintf("%d / %d emails", m.latest.Accumulated, m.latest.Max),
		))
		b.WriteString("\n")
	}

	if m.finished {
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(m.styles.Error.Render("Sync failed: " + m.err.Error()))
		} else {
			b.WriteString(m.styles.Success.Render(fmt.Sprintf(
				"Done. %d downloaded, %d embedded, %d skipped.",
				m.stats.Downloaded, m.stats.Embedded, m.stats.Skipped(),
			)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Run starts the progress view and blocks until the sync finishes.
func (m *SyncModel) Run() (*SyncModel, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return m, err
	}
	if fm, ok := final.(*SyncModel); ok {
		return fm, nil
	}
	return m, nil
}

// Percent returns the current completion fraction.
func (m *SyncModel) Percent() float64 {
	return m.percent
}

// Stats returns the final stats once the sync has finished.
func (m *SyncModel) Stats() domain.SyncStats {
	return m.stats
}

// Err returns the sync error, if any.
func (m *SyncModel) Err() error {
	return m.err
}

// Finished reports whether the sync has completed.
func (m *SyncModel) Finished() bool {
	return m.finished
}

// waitForProgress blocks on the next progress update.
func waitForProgress(ch <-chan driving.Progress) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-ch
		if !ok {
			return nil
		}
		return messages.SyncProgressed{Accumulated: update.Accumulated, Max: update.Max}
	}
}

// waitForDone blocks until the sync goroutine reports its outcome.
func waitForDone(ch <-chan messages.SyncFinished) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}
