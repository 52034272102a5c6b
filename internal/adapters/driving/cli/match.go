package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rolohq/rolo-mcp/internal/core/domain"
)

var (
	matchName    string
	matchEmail   string
	matchPhone   string
	matchSocial  string
	matchCompany string
	matchJSON    bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Find contacts by identity parameters",
	Long: `Resolves identity parameters to ranked contact matches.
Exact identifiers (email, phone, social URL) win outright; otherwise
names are matched fuzzily, optionally boosted by a company hint.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchName, "name", "", "full or partial name")
	matchCmd.Flags().StringVar(&matchEmail, "email", "", "email address")
	matchCmd.Flags().StringVar(&matchPhone, "phone", "", "phone number, any formatting")
	matchCmd.Flags().StringVar(&matchSocial, "social", "", "social profile URL or handle")
	matchCmd.Flags().StringVar(&matchCompany, "company", "", "company hint for name matches")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	if matcherService == nil || searchService == nil {
		return errors.New("matcher service not configured")
	}

	ctx := cmd.Context()
	if err := searchService.Refresh(ctx); err != nil {
		return fmt.Errorf("refreshing index: %w", err)
	}
	matcherService.SetContacts(searchService.Contacts())

	params := domain.MatchParams{
		Name:      matchName,
		Email:     matchEmail,
		Phone:     matchPhone,
		SocialURL: matchSocial,
		Company:   matchCompany,
	}
	matches, err := matcherService.FindMatches(ctx, params)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	if matchJSON {
		data, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal matches: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(matches) == 0 {
		cmd.Println("No matches found.")
		return nil
	}

	cmd.Println("Matches:")
	cmd.Println()
	for i := range matches {
		contact := matches[i].Contact
		name := contact.FullName()
		if name == "" {
			name = contact.ID
		}
		cmd.Printf("  [%d] %s (%d) - %s\n", i+1, name, matches[i].Confidence, matches[i].Reason)
	}
	cmd.Println()

	return nil
}
