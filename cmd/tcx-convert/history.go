// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsuurmey/fitness-file-fixing/internal/catalog"
	"github.com/nsuurmey/fitness-file-fixing/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the conversion-history catalog",
	Long: `History manages the local SQLite catalog of completed conversions.
Each successful convert run records the activity's sport, start time, lap
and trackpoint counts, distance, and file paths.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent conversions, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	records, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No conversions recorded.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%-20s  %-8s  %6s  %8s  %10s  %s\n",
		"Converted", "Sport", "Laps", "Points", "Distance", "Output")
	for _, r := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s  %-8s  %6d  %8d  %9.1fm  %s\n",
			r.ConvertedAt.Local().Format("2006-01-02 15:04:05"),
			r.Sport, r.Laps, r.Trackpoints, r.TotalDistanceMeters, r.OutputPath)
	}
	return nil
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the full conversion history to stdout",
	RunE:  runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml", "":
		return store.ExportYAML(context.Background(), cmd.OutOrStdout())
	case "json":
		return store.ExportJSON(context.Background(), cmd.OutOrStdout())
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

// catalogConfig resolves the catalog settings from flags, the config file,
// and the platform default data directory, in decreasing priority.
func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	dir, _ := cmd.Flags().GetString("catalog-dir")
	if dir == "" {
		dir = viper.GetString("catalog.dir")
	}
	if dir == "" {
		dir = defaultCatalogDir()
	}

	maxResults := viper.GetInt("catalog.max_results")

	return types.CatalogConfig{
		CatalogDir: dir,
		MaxResults: maxResults,
	}
}

func defaultCatalogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tcx-convert"
	}
	return filepath.Join(home, ".local", "share", "tcx-convert")
}

func init() {
	historyCmd.PersistentFlags().String("catalog-dir", "", "directory for the history catalog database")
	historyListCmd.Flags().Int("limit", 0, "maximum entries to list (default 20)")
	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}
