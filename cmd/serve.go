package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/unitboard/unitboard/internal/config"
	"github.com/unitboard/unitboard/pkg/dashboard"
	"github.com/unitboard/unitboard/pkg/journal"
	"github.com/unitboard/unitboard/pkg/pidfile"
	"github.com/unitboard/unitboard/pkg/unit"
)

var (
	listenAddr string
	configFile string
	pidFile    string
)

func init() {
	rootCmd.AddCommand(serve)
	serve.PersistentFlags().StringVarP(&listenAddr, "listen", "l", "", "listen address; overrides the config file and the PORT environment variable")
	serve.PersistentFlags().StringVarP(&configFile, "config", "c", "/etc/unitboard/unitboard.hcl", "path to the server configuration file")
	serve.PersistentFlags().StringVar(&pidFile, "pidfile", "", "write the dashboard's process id to this file")
}

var serve = &cobra.Command{
	Use:   "serve",
	Short: "Start the status dashboard web server",
	Long:  "This sub-command starts the web dashboard that surfaces systemd unit status and journal logs for the configured utilities.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.FromFile(configFile)
		if err != nil {
			log.Fatalf("failed to load configuration from %q: %s", configFile, err)
		}
		if listenAddr != "" {
			cfg.Listen = listenAddr
		}

		pidFileHandle := pidfile.New(pidFile)
		if err := pidFileHandle.Acquire(); err != nil {
			log.Fatalf("failed to write pid file to %q: %s", pidFile, err)
		}
		defer func() {
			if err := pidFileHandle.Release(); err != nil {
				log.Errorf("error while cleaning up the pid file: %s", err)
			}
		}()

		runner := &unit.ExecRunner{Timeout: cfg.ProbeTimeoutDuration()}
		prober := unit.NewProber(runner)
		reader := journal.NewReader(runner, cfg.JournalLines)

		srv := dashboard.New(cfg.Listen, prober, reader, func() ([]string, error) {
			return config.LoadUtilities(cfg.UtilitiesFile)
		})

		signals := make(chan os.Signal, 1)
		signal.Notify(signals,
			syscall.SIGTERM,
			syscall.SIGINT,
		)

		go func() {
			s := <-signals
			log.Infof("received signal %s", s.String())
			if err := srv.Shutdown(context.Background()); err != nil {
				log.Errorf("error during shutdown: %s", err)
			}
		}()

		log.WithFields(log.Fields{
			"utilitiesFile": cfg.UtilitiesFile,
			"journalLines":  cfg.JournalLines,
		}).Info("starting dashboard")

		if err := srv.Start(); err != nil {
			log.Fatalf("dashboard stopped with error: %s", err)
		}
		log.Info("dashboard stopped without error")
	},
}
