// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tcx-convert CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the tcx-convert CLI.
var rootCmd = &cobra.Command{
	Use:   "tcx-convert",
	Short: "Repair TCX workout exports for strict training platforms",
	Long: `tcx-convert rewrites TCX files exported by one fitness platform into a
form that platforms enforcing a stricter reading of the schema can parse.

The repair removes the Creator metadata block, hoists inline extension
namespace declarations to a single prefix bound at the document root,
drops the proprietary Resistance field and lap-level aggregate statistics,
coerces heart-rate/cadence/watts values to integers, and recomputes every
per-sample speed from distance and time deltas.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tcx-convert.yaml or ~/.config/tcx-convert/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tcx-convert")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tcx-convert"))
		}
	}

	viper.SetEnvPrefix("TCX_CONVERT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
