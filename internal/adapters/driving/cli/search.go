package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
)

var (
	searchMaxResults    int
	searchMinConfidence int
	searchKinds         []string
	searchJSON          bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search across contacts, notes and reminders",
	Long: `Performs fuzzy full-text search across everything in the CRM.
The index is fetched and built on first use, then cached.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchMaxResults, "limit", "n", 0, "maximum number of contacts returned")
	searchCmd.Flags().IntVar(&searchMinConfidence, "min-confidence", 0, "drop matches scoring below this (0-100)")
	searchCmd.Flags().StringSliceVar(&searchKinds, "kinds", nil, "restrict to record kinds: contact, note, reminder")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	ctx := cmd.Context()
	if err := searchService.Refresh(ctx); err != nil {
		return fmt.Errorf("refreshing index: %w", err)
	}

	kinds := make([]domain.DocumentKind, 0, len(searchKinds))
	for _, k := range searchKinds {
		kinds = append(kinds, domain.DocumentKind(k))
	}
	opts := domain.SearchOptions{
		MaxResults:    searchMaxResults,
		MinConfidence: searchMinConfidence,
		Kinds:         kinds,
	}

	results, err := searchService.Search(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		contact := results[i].Contact
		name := contact.FullName()
		if name == "" {
			name = contact.ID
		}

		cmd.Printf("  [%d] %s (%d)\n", i+1, name, results[i].Confidence)
		for _, match := range results[i].Matches {
			where := string(match.Kind)
			if match.Field != "" {
				where += "/" + match.Field
			}
			cmd.Printf("      %s: %s\n", where, match.Snippet)
		}
		cmd.Println()
	}

	return nil
}
