package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsRegistered(t *testing.T) {
	for _, name := range []string{
		"text", "chat", "channel", "color", "hide-timer",
		"progress-bar", "padding", "song-display", "dir",
	} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "flag --%s should be registered", name)
	}

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("log-level"))
}

func TestFlagDefaults(t *testing.T) {
	assert.Equal(t, "Be right back", rootCmd.Flags().Lookup("text").DefValue)
	assert.Equal(t, "white", rootCmd.Flags().Lookup("color").DefValue)
	assert.Equal(t, "true", rootCmd.Flags().Lookup("progress-bar").DefValue)
	assert.Equal(t, "false", rootCmd.Flags().Lookup("chat").DefValue)
}

func TestDirFlagPrintsConfigDir(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--dir"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		printDir = false
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "brb")
}

func TestAcceptsTimeArguments(t *testing.T) {
	// Positional args are countdown tokens, validated at run time
	assert.NoError(t, rootCmd.Args(rootCmd, []string{"1h", "2m", "30s"}))
	assert.NoError(t, rootCmd.Args(rootCmd, nil))
}
