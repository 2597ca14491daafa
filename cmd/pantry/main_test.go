package main

import (
    "bytes"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
    t.Helper()
    var out bytes.Buffer
    rootCmd.SetOut(&out)
    rootCmd.SetErr(&out)
    rootCmd.SetArgs(args)
    t.Cleanup(func() { rootCmd.SetArgs(nil) })
    require.NoError(t, rootCmd.Execute())
    return out.String()
}

func TestVersionCommand(t *testing.T) {
    assert.Equal(t, "pantry "+version+"\n", run(t, "version"))
}

func TestTypesCommand(t *testing.T) {
    out := run(t, "types")
    lines := strings.Split(strings.TrimSpace(out), "\n")
    require.Greater(t, len(lines), 1)
    assert.True(t, strings.HasPrefix(lines[0], "CODE"))
    assert.Contains(t, out, "baked_goods")
    assert.Contains(t, out, "Pantry Staples")
}
