package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/custodia-labs/skimma-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/skimma-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/skimma-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/skimma-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

// streamChunkSize is the number of characters requested per chunk while the
// pager fills in the background.
const streamChunkSize = 10000

// App is the document pager following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// Text arrives chunk by chunk through the reader's stream session, so the
// first screen renders before extraction of a large document has finished.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the pager keybindings.
	keys *keymap.KeyMap

	// bar is the status bar component.
	bar *status.Bar

	// path is the document being paged.
	path string

	// session is the stream cursor advanced by nextChunk commands.
	session *domain.StreamSession

	// content accumulates the streamed text.
	content string

	// lines is the content wrapped to the terminal width.
	lines []string

	// scrollOffset is the index of the first visible line.
	scrollOffset int

	// progress is the extraction progress in percent.
	progress float64

	// loading is true while chunks are still arriving.
	loading bool

	// complete is set once the final chunk has been received.
	complete bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new pager for the given document path.
func NewApp(ports *Ports, path string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating pager: %w", err)
	}
	if path == "" {
		return nil, ErrMissingPath
	}

	s := styles.DefaultStyles()
	keys := keymap.DefaultKeyMap()
	bar := status.NewBar(s, keys)
	bar.SetState(status.StateStreaming)

	return &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  s,
		keys:    keys,
		bar:     bar,
		path:    path,
		session: domain.NewStreamSession(uuid.New().String(), path, streamChunkSize, true),
		loading: true,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It starts the chunk stream as soon as the program runs.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("skimma - "+filepath.Base(a.path)),
		a.nextChunk(),
	)
}

// nextChunk returns a command that advances the stream session by one chunk.
func (a *App) nextChunk() tea.Cmd {
	return func() tea.Msg {
		chunk, err := a.ports.Reader.NextChunk(a.ctx, a.session)
		return messages.ChunkLoaded{Chunk: chunk, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.bar.SetWidth(msg.Width)
		a.wrapContent()
		a.bar.SetLineCount(len(a.lines))
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ChunkLoaded:
		if msg.Err != nil {
			a.loading = false
			a.err = msg.Err
			a.bar.SetState(status.StateError)
			a.bar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.content += msg.Chunk.Content
		a.progress = msg.Chunk.Progress
		a.wrapContent()
		a.bar.SetProgress(msg.Chunk.Progress)
		a.bar.SetLineCount(len(a.lines))
		if msg.Chunk.Complete {
			a.loading = false
			a.complete = true
			a.bar.SetState(status.StateReady)
			return a, nil
		}
		return a, a.nextChunk()

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.bar.SetState(status.StateError)
		a.bar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// handleKeyMsg handles key presses.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pressed := msg.String()

	switch {
	case keymap.Matches(pressed, a.keys.Quit):
		return a, tea.Quit

	case keymap.Matches(pressed, a.keys.Up):
		if a.scrollOffset > 0 {
			a.scrollOffset--
		}

	case keymap.Matches(pressed, a.keys.Down):
		if a.scrollOffset < a.maxScrollOffset() {
			a.scrollOffset++
		}

	case keymap.Matches(pressed, a.keys.PageUp):
		a.scrollOffset -= a.visibleLines()
		if a.scrollOffset < 0 {
			a.scrollOffset = 0
		}

	case keymap.Matches(pressed, a.keys.PageDown):
		maxOffset := a.maxScrollOffset()
		a.scrollOffset += a.visibleLines()
		if a.scrollOffset > maxOffset {
			a.scrollOffset = maxOffset
		}

	case keymap.Matches(pressed, a.keys.Top):
		a.scrollOffset = 0

	case keymap.Matches(pressed, a.keys.Bottom):
		a.scrollOffset = a.maxScrollOffset()
	}

	return a, nil
}

// wrapContent wraps the content to fit the view width.
func (a *App) wrapContent() {
	if a.content == "" {
		a.lines = nil
		return
	}

	// Calculate available width (accounting for padding)
	contentWidth := a.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	// Split into lines and wrap long lines. Wrapping counts runes so
	// multi-byte text never splits mid-character.
	rawLines := strings.Split(a.content, "\n")
	a.lines = make([]string, 0, len(rawLines))

	for _, line := range rawLines {
		runes := []rune(line)
		if len(runes) <= contentWidth {
			a.lines = append(a.lines, line)
			continue
		}
		for len(runes) > contentWidth {
			a.lines = append(a.lines, string(runes[:contentWidth]))
			runes = runes[contentWidth:]
		}
		if len(runes) > 0 {
			a.lines = append(a.lines, string(runes))
		}
	}
}

// visibleLines returns the number of lines that can be displayed.
func (a *App) visibleLines() int {
	// Reserve lines for title, separator, indicator, and status bar
	reserved := 6
	available := a.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (a *App) maxScrollOffset() int {
	maxOffset := len(a.lines) - a.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// View implements tea.Model.
// It renders the pager as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder

	// Title
	b.WriteString(a.styles.Title.Render(filepath.Base(a.path)))
	b.WriteString("\n")

	// Separator
	b.WriteString(a.styles.Separator.Render(strings.Repeat("─", minInt(a.width-4, 60))))
	b.WriteString("\n\n")

	switch {
	case a.err != nil:
		b.WriteString(a.styles.Error.Render(fmt.Sprintf("Error: %s", a.err.Error())))
		b.WriteString("\n")

	case len(a.lines) == 0 && a.loading:
		b.WriteString(a.styles.Muted.Render("Extracting text..."))
		b.WriteString("\n")

	case len(a.lines) == 0:
		b.WriteString(a.styles.Muted.Render("(No content)"))
		b.WriteString("\n")

	default:
		visible := a.visibleLines()
		for i := a.scrollOffset; i < len(a.lines) && i < a.scrollOffset+visible; i++ {
			b.WriteString(a.styles.Normal.Render(a.lines[i]))
			b.WriteString("\n")
		}

		// Scroll position indicator
		if len(a.lines) > visible {
			b.WriteString("\n")
			percentage := 0
			if a.maxScrollOffset() > 0 {
				percentage = a.scrollOffset * 100 / a.maxScrollOffset()
			}
			b.WriteString(a.styles.Muted.Render(fmt.Sprintf("  [%d%%] Line %d-%d of %d",
				percentage,
				a.scrollOffset+1,
				minInt(a.scrollOffset+visible, len(a.lines)),
				len(a.lines))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(a.bar.View())

	return b.String()
}

// Run starts the pager program.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Path returns the document path being paged.
func (a *App) Path() string {
	return a.path
}

// Content returns the text received so far.
func (a *App) Content() string {
	return a.content
}

// Progress returns the extraction progress in percent.
func (a *App) Progress() float64 {
	return a.progress
}

// Complete reports whether the whole document has been received.
func (a *App) Complete() bool {
	return a.complete
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.bar.SetWidth(width)
	a.wrapContent()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
