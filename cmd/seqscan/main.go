package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toadstorm/seqscan/internal/extensions"
	"github.com/toadstorm/seqscan/internal/report"
	"github.com/toadstorm/seqscan/internal/scanner"
	"github.com/toadstorm/seqscan/internal/sequence"
)

func main() {
	var extensionsFlag string
	var showMissing bool
	var start, end, step int
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "seqscan <directory>",
		Short: "Detect numbered file sequences in a directory",
		Long: `seqscan groups the files in a directory into frame sequences
(render.0001.exr, render.0002.exr, ...) and reports each sequence's
frame range, padding and any missing frames.

Files are filtered by extension using either the --extensions flag,
a custom mask file (~/.seqscan/extensions.txt), or no mask at all.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], extensionsFlag, showMissing, start, end, step, debug)
		},
	}

	rootCmd.Flags().StringVar(&extensionsFlag, "extensions", "", "Comma-separated list of file extensions to scan (e.g. exr,dpx)")
	rootCmd.Flags().BoolVar(&showMissing, "missing", false, "List missing frame numbers for each sequence")
	rootCmd.Flags().IntVar(&start, "start", -1, "First frame of the missing-frame probe range (-1 = first observed)")
	rootCmd.Flags().IntVar(&end, "end", -1, "Last frame of the missing-frame probe range (-1 = last observed)")
	rootCmd.Flags().IntVar(&step, "step", 1, "Frame increment for the missing-frame probe range")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Dump full sequence state instead of the summary report")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(dir, extensionsFlag string, showMissing bool, start, end, step int, debug bool) error {
	// Resolve the extension mask
	var cliExts []string
	if extensionsFlag != "" {
		for _, e := range strings.Split(extensionsFlag, ",") {
			e = strings.TrimSpace(e)
			if e != "" {
				cliExts = append(cliExts, e)
			}
		}
	}
	exts, err := extensions.Resolve(cliExts)
	if err != nil {
		return fmt.Errorf("cannot resolve extension mask: %w", err)
	}

	// Scan directory
	fmt.Printf("Scanning %s...\n", dir)
	scanResult, err := scanner.Scan(dir, exts)
	if err != nil {
		return err
	}

	// Group into sequences
	seqs := sequence.Group(dir, scanResult.Names)

	if debug {
		for _, s := range seqs {
			fmt.Println()
			s.Debug(os.Stdout)
		}
		return nil
	}

	return report.Print(os.Stdout, seqs, scanResult.SkippedCount, report.Options{
		ShowMissing: showMissing,
		Start:       start,
		End:         end,
		Step:        step,
	})
}
