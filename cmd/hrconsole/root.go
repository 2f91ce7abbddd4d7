package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/aerohr/console/internal/config"
	"github.com/aerohr/console/internal/notify"
	"github.com/aerohr/console/pkg/client"
)

var (
	apiURLFlag  string
	tokenFlag   string
	timeoutFlag time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "hrconsole",
	Short:         "hrconsole - list, filter and act on HR compliance records",
	Long:          "hrconsole browses controlled documents, training records, employees and attendance from the HR API.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "API base URL (overrides AERO_API_URL)")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "Bearer token (overrides AERO_API_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "Per-request timeout (overrides AERO_TIMEOUT)")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newApproveCmd())
	rootCmd.AddCommand(newLeavesCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newSalaryCmd())
}

// session bundles what every command needs to talk to the API.
type session struct {
	cfg      config.Client
	client   *client.HRClient
	notifier *notify.Notifier
}

func newSession(cmd *cobra.Command) (*session, error) {
	config.LoadDotEnv()
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}
	if apiURLFlag != "" {
		cfg.APIURL = apiURLFlag
	}
	if tokenFlag != "" {
		cfg.Token = tokenFlag
	}
	if timeoutFlag > 0 {
		cfg.Timeout = timeoutFlag
	}
	return &session{
		cfg:      cfg,
		client:   client.NewHRClient(cfg.APIURL, client.WithToken(cfg.Token), client.WithTimeout(cfg.Timeout)),
		notifier: notify.New(cmd.OutOrStdout()),
	}, nil
}
