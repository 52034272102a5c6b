// Package cli wires the Rolo MCP adapter together and exposes it as a
// command-line tool: the MCP server itself plus small local commands
// for trying matching and search without an AI assistant attached.
package cli

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/rolohq/rolo-mcp/internal/adapters/driven/config/file"
	"github.com/rolohq/rolo-mcp/internal/adapters/driven/crm"
	"github.com/rolohq/rolo-mcp/internal/core/ports/driving"
	"github.com/rolohq/rolo-mcp/internal/core/services"
	"github.com/rolohq/rolo-mcp/internal/fuzzy"
	"github.com/rolohq/rolo-mcp/internal/logger"
)

// Environment overrides. They take precedence over the config file.
const (
	EnvAPIToken = "ROLO_API_TOKEN"
	EnvAPIURL   = "ROLO_API_URL"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Wired services, initialized once before any command runs.
var (
	configStore    *file.ConfigStore
	matcherService driving.MatcherService
	searchService  driving.SearchService
	contactService driving.ContactService
)

var rootCmd = &cobra.Command{
	Use:   "rolo-mcp",
	Short: "MCP server for the Rolo personal CRM",
	Long: `rolo-mcp exposes a Rolo personal CRM to AI assistants over the
Model Context Protocol: fuzzy contact matching, full-text search across
contacts, notes and reminders, and note/reminder/enrichment writes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.rolo)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices builds the service graph: config, CRM client, fuzzy
// engine, then the core services. Idempotent so tests can pre-seed
// the service variables.
func initServices() error {
	if searchService != nil {
		return nil
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return err
	}
	configStore = store

	baseURL := os.Getenv(EnvAPIURL)
	if baseURL == "" {
		baseURL = store.GetString(file.KeyAPIBaseURL)
	}

	// The token is resolved per request so a watched config reload
	// picks up rotation without restarting the server.
	httpClient := &http.Client{
		Transport: &oauth2.Transport{Source: &configTokenSource{store: store}},
		Timeout:   crm.DefaultTimeout,
	}
	client := crm.NewClientWithHTTPClient(baseURL, httpClient)

	ttl := time.Duration(store.GetInt(file.KeyCacheTTLMinutes)) * time.Minute
	engine := fuzzy.NewEngine()

	matcherService = services.NewMatcher(engine)
	searchService = services.NewSearchIndex(client, engine, ttl)
	contactService = services.NewContacts(client)

	logger.Debug("Services initialized (config: %s)", store.Path())
	return nil
}

// configTokenSource resolves the bearer token on every request:
// environment first, then the live config store.
type configTokenSource struct {
	store *file.ConfigStore
}

func (s *configTokenSource) Token() (*oauth2.Token, error) {
	token := os.Getenv(EnvAPIToken)
	if token == "" {
		token = s.store.GetString(file.KeyAPIToken)
	}
	if token == "" {
		return nil, errors.New("no API token configured: set " + EnvAPIToken +
			" or api.token in " + s.store.Path())
	}
	return &oauth2.Token{AccessToken: token}, nil
}
