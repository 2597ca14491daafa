package main

import (
    "fmt"

    "github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "v0.1.0"

var versionCmd = &cobra.Command{
    Use:   "version",
    Short: "Print the version number",
    Args:  cobra.NoArgs,
    Run: func(cmd *cobra.Command, args []string) {
        fmt.Fprintln(cmd.OutOrStdout(), "pantry "+version)
    },
}
