package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// flags are package state; start every run from the defaults
	searchCmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), ".env")}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	dataset := filepath.Join(t.TempDir(), "therapists.csv")
	content := "name,city,gender,experience_years,fee_amount,modes,expertise\n" +
		"Ayesha Khan,Lahore,Female,6,1500,In-person,Anxiety\n" +
		"Bilal Ahmed,Karachi,Male,4,5000,Online,Couples\n"
	require.NoError(t, os.WriteFile(dataset, []byte(content), 0o644))
	t.Setenv("DATASET_PATH", dataset)
	t.Setenv("LOG_LEVEL", "error")

	out, err := runCLI(t, "search", "--city", "Karachi", "--no-rating")
	require.NoError(t, err)
	assert.Contains(t, out, "Bilal Ahmed")
	assert.NotContains(t, out, "Ayesha Khan")

	out, err = runCLI(t, "search", "--experience", "15+")
	require.NoError(t, err)
	assert.Contains(t, out, "No matching therapists found.")
}

func TestSearchCommandInvalidBand(t *testing.T) {
	_, err := runCLI(t, "search", "--fee", "cheap")
	assert.EqualError(t, err, "invalid filters")
}

func TestSearchCommandMissingDataset(t *testing.T) {
	t.Setenv("DATASET_PATH", filepath.Join(t.TempDir(), "missing.csv"))
	t.Setenv("LOG_LEVEL", "panic")

	out, err := runCLI(t, "search")
	require.Error(t, err)
	assert.Contains(t, out, "Error loading dataset")
}
