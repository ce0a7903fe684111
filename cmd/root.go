package cmd

import (
	"fmt"
	"os"

	"github.com/lnusuite/lnu/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var debug bool
var versionRequested bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&versionRequested, "version", "", versionRequested, "Output version information and exit")
	rootCmd.PersistentFlags().BoolVarP(&debug, "verbose", "v", debug, "Enable verbose logging")
}

var rootCmd = &cobra.Command{
	Use:           "lnu",
	Short:         "lnu is a small network utility suite",
	Long:          `A TCP connect scanner with banner capture, plus a system resource monitor.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {

		if versionRequested {
			fmt.Fprintf(cmd.OutOrStdout(), "lnu %s\n", versionString())
			return nil
		}

		return cmd.Help()
	},
}

func versionString() string {
	if version.Version == "" {
		return "development version"
	}
	return version.Version
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
