package cmd

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/unitboard/unitboard/pkg/keepalive"
)

var (
	envFile     string
	pingTimeout time.Duration
)

func init() {
	rootCmd.AddCommand(keepaliveCmd)
	keepaliveCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", "", "load Supabase credentials from this .env file before reading the environment")
	keepaliveCmd.PersistentFlags().DurationVar(&pingTimeout, "timeout", keepalive.DefaultTimeout, "timeout for a single ping request")
}

var keepaliveCmd = &cobra.Command{
	Use:   "keepalive",
	Short: "Ping the Supabase project to keep it from pausing",
	Long:  "This sub-command performs one keep-alive ping against the configured Supabase project and exits. Scheduling is left to a timer or cron job; the exit code is the only contract.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := keepalive.LoadConfig(envFile)
		if err != nil {
			return errors.Wrap(err, "configuration error")
		}

		client := keepalive.NewClient(cfg, pingTimeout)
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		if cfg.HasAuthCredentials() {
			err = client.AuthPing(ctx, cfg.Email, cfg.Password)
		} else {
			err = client.Ping(ctx)
		}
		if err != nil {
			return errors.Wrap(err, "keep-alive ping failed")
		}

		log.Info("keep-alive ping successful")
		return nil
	},
}
