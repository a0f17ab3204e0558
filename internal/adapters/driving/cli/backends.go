package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

var backendsJSON bool

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List extraction backends",
	Long: `Lists every extraction backend in the order they are tried, including
unavailable ones and how to enable them. Lower priority runs first; when a
backend fails on a file, the next one in line takes over.`,
	RunE: runBackends,
}

func init() {
	backendsCmd.Flags().BoolVar(&backendsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(backendsCmd)
}

func runBackends(cmd *cobra.Command, _ []string) error {
	if backendService == nil {
		return errors.New("backend service not configured")
	}

	ctx := context.Background()

	statuses, err := backendService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list backends: %w", err)
	}

	if backendsJSON {
		return printJSON(cmd, statuses)
	}

	return outputBackendsTable(cmd, statuses)
}

func outputBackendsTable(cmd *cobra.Command, statuses []domain.BackendStatus) error {
	if len(statuses) == 0 {
		cmd.Println("No backends registered.")
		return nil
	}

	cmd.Println("Extraction backends:")
	cmd.Println()
	for i := range statuses {
		st := &statuses[i]

		state := "available"
		if !st.Available {
			state = "unavailable"
		}

		cmd.Printf("  %s (%s, priority %d) [%s]\n", st.Name, st.Class, st.Priority, state)
		cmd.Printf("      %s\n", st.Description)
		cmd.Printf("      Kinds: %s\n", joinKinds(st.Kinds))
		if !st.Available && st.Reason != "" {
			cmd.Printf("      Reason: %s\n", st.Reason)
		}
		if !st.Available && st.InstallHint != "" {
			cmd.Printf("      Install: %s\n", st.InstallHint)
		}
		cmd.Println()
	}

	return nil
}

func joinKinds(kinds []domain.Kind) string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
