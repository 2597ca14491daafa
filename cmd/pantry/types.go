package main

import (
    "fmt"
    "text/tabwriter"

    "github.com/spf13/cobra"

    "github.com/tinoosan/pantry/internal/dictionary"
)

var typesCmd = &cobra.Command{
    Use:   "types",
    Short: "List the grocery type catalog",
    Args:  cobra.NoArgs,
    RunE: func(cmd *cobra.Command, args []string) error {
        tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
        fmt.Fprintln(tw, "CODE\tLABEL")
        for _, d := range dictionary.Definitions() {
            fmt.Fprintf(tw, "%s\t%s\n", d.Code, d.Label)
        }
        return tw.Flush()
    },
}
