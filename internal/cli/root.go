// Package cli implements the bqa command line client. It drives the same
// service layer as the HTTP API, so listings, searches and summaries behave
// identically in both surfaces.
package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/SscSPs/budget_query_app/internal/adapters/budgetapi"
	portssvc "github.com/SscSPs/budget_query_app/internal/core/ports/services"
	"github.com/SscSPs/budget_query_app/internal/core/services"
	"github.com/SscSPs/budget_query_app/internal/platform/config"
)

var (
	// budgetID is the budget all subcommands operate on. Empty falls back to
	// DEFAULT_BUDGET_ID from the environment.
	budgetID string

	// verbose enables debug logging when set.
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bqa",
	Short: "Query transactions from your budgeting service",
	Long: `bqa is a read-only command line client for a personal budgeting service.

It lists, searches, exports and charts transactions without ever writing to
the budget. Configuration comes from the environment (or a .env file):
BUDGET_API_TOKEN, DEFAULT_BUDGET_ID and optionally BUDGET_API_BASE_URL.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&budgetID, "budget", "", "Budget ID (defaults to DEFAULT_BUDGET_ID)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// newTransactionService builds the full service stack from process configuration.
func newTransactionService() (portssvc.TransactionSvcFacade, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	client := budgetapi.NewClient(
		cfg.BudgetAPIBaseURL,
		cfg.BudgetAPIToken,
		budgetapi.WithHTTPClient(&http.Client{Timeout: cfg.HTTPClientTimeout}),
	)
	return services.NewTransactionService(client, services.WithDefaultBudgetID(cfg.DefaultBudgetID)), nil
}
