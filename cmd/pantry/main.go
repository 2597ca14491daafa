// Package main provides the pantry CLI: the HTTP service plus a few
// offline helpers for inspecting the grocery type catalog.
package main

import (
    "fmt"
    "os"

    "github.com/spf13/cobra"
)

var (
    // configFile is set by the --config flag.
    configFile string
    // envFile is set by the --env-file flag. Empty means ./.env if present.
    envFile string
)

func main() {
    if err := rootCmd.Execute(); err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
}

var rootCmd = &cobra.Command{
    Use:   "pantry",
    Short: "Pantry tracks groceries and the users who stock them",
    Long: `Pantry is an in-memory grocery and user store exposed over HTTP.
Run "pantry serve" to start the service.`,
    SilenceUsage: true,
}

func init() {
    rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
    rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading PANTRY_* variables")

    rootCmd.AddCommand(serveCmd)
    rootCmd.AddCommand(typesCmd)
    rootCmd.AddCommand(versionCmd)
}
