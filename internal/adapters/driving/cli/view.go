package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/skimma-cli/internal/adapters/driving/tui"
)

// viewCmd represents the view command.
var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Page through a document in the terminal",
	Long: `Opens a document in an interactive pager. Text loads chunk by chunk in
the background, so large documents display immediately.

Controls:
  ↑/k, ↓/j - Scroll line by line
  PgUp/PgDn - Scroll by screen
  g/G      - Jump to top / bottom
  q, Esc   - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in pager: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if readerService == nil {
		return errors.New("reader service not configured")
	}

	ports := &tui.Ports{
		Reader: readerService,
	}

	app, err := tui.NewApp(ports, args[0])
	if err != nil {
		return fmt.Errorf("failed to create pager: %w", err)
	}

	// Set up context from command
	app.WithContext(cmd.Context())

	// Create and run the bubbletea program
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("pager error: %w", err)
	}

	return nil
}
