// Command integra runs the Integra Health & Sport website and offers a few
// maintenance commands over its data files.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/integra/health-sport-site/internal/pkg/config"
	"github.com/integra/health-sport-site/pkg/logger"
)

const serviceName = "integra"

var (
	cfg *config.Config
	log zerolog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "integra",
	Short: "Integra Health & Sport website",
	Long: `integra serves the Integra Health & Sport marketing site: the service
catalog, the public contact form and the admin contact panel.

Configuration is read from the environment (PORT, ADMIN_USER, ADMIN_PASS,
CONTACTS_FILE, SERVICES_FILE, SESSION_SECRET, ...).

Run without arguments to start the web server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(cmd.Context())
		if err != nil {
			return err
		}
		log = logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  cfg.IsDevelopment(),
			Output:  cmd.ErrOrStderr(),
			Service: serviceName,
		})
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context(), cfg, log)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, contactsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
