// Package main provides the entry point for the fundscope dashboard server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fundscope",
	Short: "Funding milestone dashboard server",
	Long:  "Fundscope serves a read-only company funding/IPO milestone dashboard: it loads a static JSON dataset, derives lifecycle stages, and answers filter queries over HTTP.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
