package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lnusuite/lnu/monitor"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var monitorInterval = 5 * time.Second
var monitorDuration = 60 * time.Second
var monitorOut = "logs/monitor.log"
var monitorMaxSizeMB = 2

func init() {
	monitorCmd.Flags().DurationVarP(&monitorInterval, "interval", "i", monitorInterval, "Time between samples")
	monitorCmd.Flags().DurationVarP(&monitorDuration, "duration", "d", monitorDuration, "How long to run, 0 to run until interrupted")
	monitorCmd.Flags().StringVarP(&monitorOut, "out", "o", monitorOut, "JSONL output path")
	monitorCmd.Flags().IntVarP(&monitorMaxSizeMB, "max-size-mb", "", monitorMaxSizeMB, "Rotate the output file once it exceeds this many MiB")
	rootCmd.AddCommand(monitorCmd)
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Sample CPU, memory, disk and network counters to a JSONL file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {

		out := cmd.OutOrStdout()

		if monitorMaxSizeMB < 1 {
			return fmt.Errorf("Invalid max size: %d", monitorMaxSizeMB)
		}

		sink := &lumberjack.Logger{
			Filename: monitorOut,
			MaxSize:  monitorMaxSizeMB,
		}
		defer sink.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(out, "Starting monitor. Logging to %s for %s.\n", monitorOut, monitorDuration.String())
		fmt.Fprintln(out, "Press Ctrl+C to exit early.")

		if err := monitor.New(monitorInterval, monitorDuration).Run(ctx, sink); err != nil {
			return err
		}

		fmt.Fprintln(out, "Monitor: exiting cleanly.")
		return nil
	},
}
