// Package main implements the tcshows CLI, the build tool that turns the
// shows spreadsheet and linked Bandcamp pages into the site's data file.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tcshows",
	Short: "Twin Cities show listing builder",
	Long:  "tcshows converts the venues and shows spreadsheet exports plus linked Bandcamp pages into the single JSON document served to the site front end.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
