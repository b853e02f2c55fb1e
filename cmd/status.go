package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/unitboard/unitboard/pkg/cli"
	"github.com/unitboard/unitboard/pkg/unit"
)

func init() {
	statusCmd.Flags().BoolP("json", "j", false, "Print status as JSON")
	statusCmd.Flags().Bool("exit-with-status", false, "Exit with status code 1 if any service unit is not active")

	rootCmd.AddCommand(&statusCmd)
}

var statusCmd = cobra.Command{
	Use:        "status [utility]",
	Args:       cobra.MaximumNArgs(1),
	ArgAliases: []string{"utility"},
	Short:      "Show utility status",
	Long:       "This command queries a running dashboard for unit status.\n\nWithout an argument, all configured utilities are shown.",

	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient := cli.NewAPIClient(apiAddress)

		resp := apiClient.Status()
		if resp.Err() != nil {
			return errors.Wrap(resp.Err(), "failed to get status")
		}

		utilities := resp.Body.Utilities
		if len(args) == 1 {
			utilities = filterUtilities(utilities, args[0])
			if len(utilities) == 0 {
				return fmt.Errorf("utility %q is not configured", args[0])
			}
		}

		if printJSON, _ := cmd.Flags().GetBool("json"); printJSON {
			resp.Body.Utilities = utilities
			if err := resp.Print(); err != nil {
				return errors.Wrap(err, "failed to print output")
			}
		} else {
			for _, utility := range utilities {
				printUtility(utility)
			}
		}

		if exitWithStatus, _ := cmd.Flags().GetBool("exit-with-status"); exitWithStatus && !allServicesActive(utilities) {
			os.Exit(1)
		}

		return nil
	},
}

func filterUtilities(utilities []unit.UtilityStatus, name string) []unit.UtilityStatus {
	for _, utility := range utilities {
		if utility.Name == name {
			return []unit.UtilityStatus{utility}
		}
	}
	return nil
}

func allServicesActive(utilities []unit.UtilityStatus) bool {
	for _, utility := range utilities {
		for _, service := range utility.Services {
			if service.Active != unit.ActiveStateActive {
				return false
			}
		}
	}
	return true
}

func printUtility(utility unit.UtilityStatus) {
	color.New(color.FgHiBlue, color.Bold).Printf("%s\n", utility.Name)
	for _, service := range utility.Services {
		printUnitLine(service)
	}
	for _, timer := range utility.Timers {
		printUnitLine(timer)
	}
}

func printUnitLine(status unit.Status) {
	active := color.New(color.FgHiRed, color.Bold)
	switch status.Active {
	case unit.ActiveStateActive:
		active = color.New(color.FgHiGreen, color.Bold)
	case unit.ActiveStateError, unit.ActiveStateUnknown:
		active = color.New(color.FgHiYellow, color.Bold)
	}

	enabled := color.New(color.FgBlue).SprintFunc()

	fmt.Printf("  %-40s %s / %s\n", status.Name, active.Sprint(string(status.Active)), enabled(string(status.Enabled)))
}
