package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TwiN/go-color"
	"github.com/lnusuite/lnu/report"
	"github.com/lnusuite/lnu/scan"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var startPort = 1
var endPort = 1024
var parallelism = 200
var timeoutMS = 400
var bannerTimeoutMS = 200
var outputPath string
var noColor bool

func init() {
	scanCmd.Flags().IntVarP(&startPort, "start", "s", startPort, "First port of the range")
	scanCmd.Flags().IntVarP(&endPort, "end", "e", endPort, "Last port of the range (inclusive)")
	scanCmd.Flags().IntVarP(&parallelism, "workers", "w", parallelism, "Maximum number of probes in flight")
	scanCmd.Flags().IntVarP(&timeoutMS, "timeout-ms", "t", timeoutMS, "Connect timeout in MS")
	scanCmd.Flags().IntVarP(&bannerTimeoutMS, "banner-timeout-ms", "b", bannerTimeoutMS, "Banner read timeout in MS")
	scanCmd.Flags().StringVarP(&outputPath, "output", "o", outputPath, "Optional path to save JSON results")
	scanCmd.Flags().BoolVarP(&noColor, "no-color", "", noColor, "Disable coloured progress output")
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan [host]",
	Short: "Concurrent TCP connect scan of a port range",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		host := args[0]
		out := cmd.OutOrStdout()

		if err := scan.ValidateRange(startPort, endPort); err != nil {
			return err
		}
		if parallelism < 1 {
			return fmt.Errorf("%w: %d", scan.ErrInvalidConcurrency, parallelism)
		}
		if _, err := scan.ResolveHost(host); err != nil {
			return err
		}

		fmt.Fprintln(out, "\n*** WARNING: Only scan hosts you own or have explicit permission to test. ***")

		scanner := scan.NewConnectScanner(
			time.Millisecond*time.Duration(timeoutMS),
			time.Millisecond*time.Duration(bannerTimeoutMS),
			parallelism,
		)

		colorize := !noColor && isTerminal(out)
		scanner.OnOpen(func(result scan.ProbeResult) {
			fmt.Fprintln(out, progressLine(host, result, colorize))
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		startTime := time.Now()
		fmt.Fprintf(out, "\nScanning %s from port %d to %d with %d workers...\n\n", host, startPort, endPort, parallelism)

		result, err := scanner.Scan(ctx, host, startPort, endPort)
		if result == nil {
			return err
		}
		if err != nil {
			log.Warnf("Scan interrupted, results are partial: %s", err)
		}

		fmt.Fprintf(out, "\n%s\n", result.String())
		fmt.Fprintf(out, "Scan complete in %s.\n", time.Since(startTime).String())

		if outputPath != "" {
			if werr := report.WriteFile(outputPath, result); werr != nil {
				return fmt.Errorf("Error writing to output file: %w", werr)
			}
			fmt.Fprintf(out, "Results saved to %s\n", outputPath)
		}

		return err
	},
}

func progressLine(host string, result scan.ProbeResult, colorize bool) string {
	prefix := "[+] OPEN:"
	if colorize {
		prefix = color.Colorize(color.Green, prefix)
	}

	line := fmt.Sprintf("%s Port %d on %s", prefix, result.Port, host)
	if service := scan.DescribePort(result.Port); service != "" {
		line = fmt.Sprintf("%s (%s)", line, service)
	}
	if result.HasBanner() {
		line = fmt.Sprintf("%s - %s", line, result.Banner)
	}
	return line
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
