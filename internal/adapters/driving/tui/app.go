package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/keymap"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/messages"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/styles"
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
)

const (
	// resultLimit is how many similar emails a TUI search requests.
	resultLimit = 10

	snippetLength = 80
)

// App is the interactive search browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// input is the query input field.
	input textinput.Model

	// hits holds the current similarity results.
	hits []domain.SimilarityHit

	// selected is the index of the highlighted result.
	selected int

	// focusInput is true while the user is typing a query.
	focusInput bool

	// searching is true while a query is in flight.
	searching bool

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "Describe the email you want precedents for..."
	input.CharLimit = 256
	input.Width = 60
	input.Focus()

	return &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     styles.DefaultStyles(),
		keymap:     keymap.DefaultKeyMap(),
		input:      input,
		focusInput: true,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("inkwell - Sent Mail Search"),
		textinput.Blink,
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.SearchCompleted:
		a.searching = false
		a.selected = 0
		if msg.Err != nil {
			a.err = msg.Err
			a.hits = nil
			a.focusInput = true
			a.input.Focus()
			return a, nil
		}
		a.err = nil
		a.hits = msg.Hits
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKeyMsg processes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keymap.Quit) {
		return a, tea.Quit
	}

	if a.focusInput {
		return a.handleInputKey(msg)
	}
	return a.handleResultsKey(msg)
}

// handleInputKey processes keys while the query input has focus.
func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Back):
		return a, tea.Quit

	case key.Matches(msg, a.keymap.Search):
		query := strings.TrimSpace(a.input.Value())
		if query == "" || a.searching {
			return a, nil
		}
		a.searching = true
		a.focusInput = false
		a.input.Blur()
		return a, a.performSearch(query)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleResultsKey processes keys while the result list has focus.
func (a *App) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Back):
		return a, tea.Quit

	case key.Matches(msg, a.keymap.Up):
		if a.selected > 0 {
			a.selected--
		}

	case key.Matches(msg, a.keymap.Down):
		if a.selected < len(a.hits)-1 {
			a.selected++
		}

	case key.Matches(msg, a.keymap.NewSearch):
		a.focusInput = true
		a.input.Focus()
		a.input.SetValue("")
		return a, textinput.Blink
	}
	return a, nil
}

// performSearch runs a similarity query off the Update loop.
func (a *App) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		hits, err := a.ports.Search.FindSimilar(a.ctx, query, resultLimit, "")
		return messages.SearchCompleted{Query: query, Hits: hits, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(a.styles.Title.Render("inkwell"))
	b.WriteString(a.styles.Muted.Render("  similar sent emails"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.InputField.Render(a.input.View()))
	b.WriteString("\n\n")

	switch {
	case a.searching:
		b.WriteString(a.styles.Muted.Render("Searching..."))
	case a.err != nil:
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
	case len(a.hits) == 0:
		b.WriteString(a.styles.Muted.Render("No results yet. Type a query and press enter."))
	default:
		b.WriteString(a.viewResults())
	}

	b.WriteString("\n\n")
	b.WriteString(a.viewHelp())

	return b.String()
}

// viewResults renders the result list with the selection highlighted.
func (a *App) viewResults() string {
	var b strings.Builder

	b.WriteString(a.styles.Subtitle.Render(fmt.Sprintf("%d results", len(a.hits))))
	b.WriteString("\n\n")

	for i, hit := range a.hits {
		header := fmt.Sprintf("%s  %s", hit.Subject, a.styles.Muted.Render("to "+hit.To))
		if hit.Similarity != nil {
			header = fmt.Sprintf("%3.0f%%  %s", *hit.Similarity*100, header)
		}

		if i == a.selected {
			b.WriteString(a.styles.Selected.Render("> " + header))
		} else {
			b.WriteString(a.styles.Normal.Render("  " + header))
		}
		b.WriteString("\n")
		b.WriteString("      " + a.styles.Muted.Render(snippet(hit.Content)))
		b.WriteString("\n")
	}

	return b.String()
}

// viewHelp renders the keybinding hints for the focused pane.
func (a *App) viewHelp() string {
	bindings := a.keymap.ResultsHelp()
	if a.focusInput {
		bindings = a.keymap.InputHelp()
	}

	parts := make([]string, len(bindings))
	for i, binding := range bindings {
		parts[i] = fmt.Sprintf("[%s] %s", binding.Help().Key, binding.Help().Desc)
	}
	return a.styles.Help.Render(strings.Join(parts, "  "))
}

// snippet returns the first body line of an indexed email, shortened.
func snippet(content string) string {
	body := content
	if _, after, found := strings.Cut(content, "\n\n"); found {
		body = after
	}
	body = strings.TrimSpace(body)
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		body = body[:idx]
	}
	if len(body) > snippetLength {
		body = body[:snippetLength] + "..."
	}
	return body
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Query returns the current query text.
func (a *App) Query() string {
	return a.input.Value()
}

// Hits returns the current similarity results.
func (a *App) Hits() []domain.SimilarityHit {
	return a.hits
}

// SelectedIndex returns the currently highlighted result index.
func (a *App) SelectedIndex() int {
	return a.selected
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its initial window size.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
}
