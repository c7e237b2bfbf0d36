// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bookbinder CLI.
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

// rootCmd is the base command for the bookbinder CLI.
var rootCmd = &cobra.Command{
	Use:   "bookbinder",
	Short: "Add a navigable outline and page labels to the Specifying Systems PDF",
	Long: `bookbinder post-processes the "Specifying Systems" book PDF, which is
distributed without navigation metadata. It writes a new copy with a bookmark
tree for the book's parts, chapters, and sections, and with page labels that
number the front matter in Roman numerals and restart Arabic numbering at the
Introduction.

The input file is never modified; one new file is written next to it.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bookbinder.yaml or ~/.config/bookbinder/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bookbinder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bookbinder"))
		}
	}

	viper.SetEnvPrefix("BOOKBINDER")
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
