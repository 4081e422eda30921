// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsuurmey/fitness-file-fixing/internal/catalog"
	"github.com/nsuurmey/fitness-file-fixing/internal/tcx"
	"github.com/nsuurmey/fitness-file-fixing/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input] [output]",
	Short: "Repair one TCX file, or a directory of them",
	Long: `Convert repairs a TCX export and writes the corrected document to the
output path. The output file is written atomically: on any failure it is
left untouched.

With --batch, every .tcx file in the given directory is converted into
--out-dir (named <name>_fixed.tcx), continuing past per-file failures.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	diag := io.Discard
	if verbose {
		diag = cmd.ErrOrStderr()
	}

	pipe := tcx.New(convertConfig(cmd))

	if batchDir, _ := cmd.Flags().GetString("batch"); batchDir != "" {
		if len(args) != 0 {
			return fmt.Errorf("--batch takes no positional arguments")
		}
		outDir, _ := cmd.Flags().GetString("out-dir")
		if outDir == "" {
			outDir = batchDir
		}
		result, err := pipe.ConvertBatch(batchDir, outDir, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if result.HasFailures() {
			return fmt.Errorf("%d file(s) failed conversion", result.Failed)
		}
		return nil
	}

	if len(args) != 2 {
		return fmt.Errorf("expected input and output paths (or --batch <dir>)")
	}
	input, output := args[0], args[1]

	rep, sum, err := pipe.ConvertFile(input, output)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Conversion complete: %s -> %s\n", input, output)
	printReport(diag, rep)

	if skip, _ := cmd.Flags().GetBool("no-history"); !skip {
		recordConversion(cmd, sum, input, output)
	}
	return nil
}

// printReport writes the per-stage transformation counters to w.
func printReport(w io.Writer, rep *tcx.Report) {
	fmt.Fprintln(w, "Transformation details:")
	fmt.Fprintf(w, "  trackpoints processed:        %d\n", rep.Trackpoints)
	fmt.Fprintf(w, "  creator blocks removed:       %d\n", rep.CreatorsRemoved)
	fmt.Fprintf(w, "  inline namespaces rewritten:  %d\n", rep.InlineDeclsRewritten)
	fmt.Fprintf(w, "  resistance fields removed:    %d\n", rep.ResistanceRemoved)
	fmt.Fprintf(w, "  lap aggregates removed:       %d\n", rep.AggregatesRemoved)
	fmt.Fprintf(w, "  numeric values normalized:    %d\n", rep.ValuesNormalized)
	fmt.Fprintf(w, "  speeds recomputed:            %d\n", rep.SpeedsRecomputed)
	if rep.NegativeSpeeds > 0 {
		fmt.Fprintf(w, "  negative speeds (distance decreased between samples): %d\n", rep.NegativeSpeeds)
	}
}

// recordConversion appends the conversion to the history catalog. The file
// is already safely written, so catalog trouble is a warning, never a
// command failure.
func recordConversion(cmd *cobra.Command, sum types.ActivitySummary, input, output string) {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: history catalog unavailable: %v\n", err)
		return
	}
	defer store.Close()

	rec := types.ConversionRecord{
		ActivitySummary: sum,
		InputPath:       input,
		OutputPath:      output,
	}
	if err := store.Record(context.Background(), rec); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: recording history: %v\n", err)
	}
}

// convertConfig builds the pipeline config from defaults, the viper config
// file, and command flags, in increasing priority.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	cfg := types.DefaultConvertConfig()

	if v := viper.GetString("convert.extension_uri"); v != "" {
		cfg.ExtensionURI = v
	}
	if v := viper.GetString("convert.extension_prefix"); v != "" {
		cfg.ExtensionPrefix = v
	}
	if v := viper.GetStringSlice("convert.lap_aggregates"); len(v) > 0 {
		cfg.LapAggregates = v
	}
	if v := viper.GetInt("convert.indent"); v > 0 {
		cfg.Indent = v
	}

	if prefix, _ := cmd.Flags().GetString("prefix"); prefix != "" {
		cfg.ExtensionPrefix = prefix
	}
	if indent, _ := cmd.Flags().GetInt("indent"); indent > 0 {
		cfg.Indent = indent
	}
	return cfg
}

func init() {
	convertCmd.Flags().BoolP("verbose", "v", false, "print per-stage transformation details to stderr")
	convertCmd.Flags().String("prefix", "", "extension namespace prefix bound at the document root (default ns3)")
	convertCmd.Flags().Int("indent", 0, "spaces per indentation level in the output (default 2)")
	convertCmd.Flags().String("batch", "", "convert every .tcx file in this directory")
	convertCmd.Flags().String("out-dir", "", "output directory for --batch (default: the batch directory)")
	convertCmd.Flags().Bool("no-history", false, "skip recording the conversion in the history catalog")
	convertCmd.Flags().String("catalog-dir", "", "directory for the history catalog database")

	rootCmd.AddCommand(convertCmd)
}
