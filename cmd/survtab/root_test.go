package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRootCmd_Exists verifies getRootCmd returns a valid command.
func TestGetRootCmd_Exists(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")
	assert.Equal(t, "survtab", cmd.Use,
		"Command name should be survtab")
}

// TestGetRootCmd_Subcommands verifies all subcommands are registered.
func TestGetRootCmd_Subcommands(t *testing.T) {
	cmd := getRootCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Contains(t, names, "harvest")
	assert.Contains(t, names, "create")
	assert.Contains(t, names, "load")
}

// TestGetRootCmd_SilencesUsage verifies errors do not dump usage.
func TestGetRootCmd_SilencesUsage(t *testing.T) {
	cmd := getRootCmd()

	assert.True(t, cmd.SilenceUsage,
		"SilenceUsage should be set")
	assert.True(t, cmd.SilenceErrors,
		"SilenceErrors should be set")
}

// TestGetHarvestCmd_Flags verifies harvest command flags.
func TestGetHarvestCmd_Flags(t *testing.T) {
	cmd := getHarvestCmd()
	require.NotNil(t, cmd)

	kindFlag := cmd.Flags().Lookup("kind")
	require.NotNil(t, kindFlag, "--kind flag should exist")
	assert.Equal(t, "k", kindFlag.Shorthand)

	outFlag := cmd.Flags().Lookup("out")
	require.NotNil(t, outFlag, "--out flag should exist")
	assert.Equal(t, "o", outFlag.Shorthand)

	formatFlag := cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag, "--format flag should exist")
	assert.Equal(t, "f", formatFlag.Shorthand)

	jobsFlag := cmd.Flags().Lookup("jobs")
	require.NotNil(t, jobsFlag, "--jobs flag should exist")
	assert.Equal(t, "j", jobsFlag.Shorthand)
}

// TestGetHarvestCmd_RequiresArgs verifies at least one workbook path
// is required.
func TestGetHarvestCmd_RequiresArgs(t *testing.T) {
	cmd := getHarvestCmd()

	err := cmd.Args(cmd, []string{})
	assert.Error(t, err, "harvest without workbooks should fail")

	err = cmd.Args(cmd, []string{"survey.xlsx"})
	assert.NoError(t, err)
}

// TestGetCreateCmd_ForceFlag verifies --force flag exists.
func TestGetCreateCmd_ForceFlag(t *testing.T) {
	cmd := getCreateCmd()

	forceFlag := cmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag,
		"--force flag should exist")

	assert.Equal(t, "f", forceFlag.Shorthand,
		"Short form should be -f")
	assert.Equal(t, "false", forceFlag.DefValue,
		"Default should be false")
}

// TestGetLoadCmd_Args verifies load accepts at most one directory.
func TestGetLoadCmd_Args(t *testing.T) {
	cmd := getLoadCmd()
	require.NotNil(t, cmd)

	assert.NoError(t, cmd.Args(cmd, []string{}))
	assert.NoError(t, cmd.Args(cmd, []string{"./out"}))
	assert.Error(t, cmd.Args(cmd, []string{"a", "b"}))
}
