package cmd

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/unitboard/unitboard/pkg/cli"
)

var (
	follow   bool
	logsJSON bool
)

func init() {
	logsCmd.PersistentFlags().BoolVarP(&follow, "follow", "f", false, "stream new journal entries as they appear")
	logsCmd.PersistentFlags().BoolVarP(&logsJSON, "json", "j", false, "Print logs as JSON")
	rootCmd.AddCommand(logsCmd)
}

var logsCmd = &cobra.Command{
	Use:        "logs <utility>",
	Args:       cobra.ExactArgs(1),
	ArgAliases: []string{"utility"},
	Short:      "Get journal logs of a utility",
	Long:       "This command fetches the recent journal entries of a utility's service unit from a running dashboard.",
	Run: func(cmd *cobra.Command, args []string) {
		utility := args[0]
		apiClient := cli.NewAPIClient(apiAddress)

		if follow {
			resp := apiClient.LogsStream(utility)
			if err := resp.Print(); err != nil {
				log.Errorf("failed to stream logs: %s", err.Error())
			}
			return
		}

		resp := apiClient.Logs(utility)
		if resp.Err() != nil {
			log.Errorf("failed to get logs of %s: %s", utility, resp.Err().Error())
			return
		}

		if logsJSON {
			if err := resp.Print(); err != nil {
				log.Errorf("failed to print output: %s", err.Error())
			}
			return
		}

		if resp.Body.Error != "" {
			log.Warnf("no logs available: %s", resp.Body.Error)
			return
		}

		for _, entry := range resp.Body.Entries {
			fmt.Printf("%s  %s\n", entry.Timestamp.Format(time.RFC3339), entry.Message)
		}
	},
}
