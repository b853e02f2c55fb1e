package cmd

import (
	"net"
	"net/http"
	"net/http/pprof"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	apiAddress    string
	enableProfile bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&apiAddress, "api-address", "a", "http://127.0.0.1:8080", "address of the dashboard instance the client commands talk to")
	rootCmd.PersistentFlags().BoolVar(&enableProfile, "profile", false, "enable pprof http server")
}

var rootCmd = &cobra.Command{
	Use:     "unitboard",
	Short:   "Unitboard - systemd status dashboard and keep-alive tooling",
	Long:    "Unitboard bundles the small operational utilities of a single-node server fleet: a web dashboard for systemd unit status and logs, and a Supabase keep-alive pinger.",
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if enableProfile {
			go func() {
				mux := http.NewServeMux()
				mux.HandleFunc("/debug/pprof/", pprof.Index)
				mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
				mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
				mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
				mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

				listener, err := net.Listen("tcp", "127.0.0.1:0")
				if err != nil {
					log.Errorf("pprof server failed to listen: %v", err)
					return
				}
				log.Infof("Starting pprof server on http://%s/debug/pprof/", listener.Addr().String())
				if err := http.Serve(listener, mux); err != nil {
					log.Errorf("pprof server error: %v", err)
				}
			}()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
