package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func executeCommand(t *testing.T, args ...string) string {
	t.Helper()

	var stdout, stderr bytes.Buffer

	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	require.NoError(t, rootCmd.Execute(), stderr.String())

	return stdout.String()
}

func writeRequest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t,
		os.WriteFile(path, []byte(content), 0o600),
	)

	return path
}

func TestAllocateCommand(t *testing.T) {
	t.Setenv("DAYSCHEDULER_POLICY", "")
	t.Setenv("DAYSCHEDULER_LOG_LEVEL", "")

	path := writeRequest(t, requestYAML)

	output := executeCommand(t, "allocate", "--request", path, "--output", "json")

	var view allocationView
	require.NoError(t,
		json.Unmarshal([]byte(output), &view),
	)

	require.Equal(t, "longest-task-first", view.Policy)
	require.Equal(t,
		[]placementView{
			{
				Task:     "focus",
				Start:    "2020-07-20T11:00:00Z",
				End:      "2020-07-20T14:00:00Z",
				Duration: "3h0m0s",
			},
			{
				Task:     "mail",
				Start:    "2020-07-20T09:00:00Z",
				End:      "2020-07-20T09:30:00Z",
				Duration: "30m0s",
			},
		},
		view.Placements,
	)
	require.Empty(t, view.Dropped)
	require.Len(t, view.Completeness, 2)
	require.Equal(t, 100, view.Completeness[0].Percent)
}

func TestFreeCommand(t *testing.T) {
	t.Setenv("DAYSCHEDULER_POLICY", "")
	t.Setenv("DAYSCHEDULER_LOG_LEVEL", "")

	path := writeRequest(t, requestYAML)

	output := executeCommand(t, "free", "--request", path, "--output", "yaml")

	var views []freeTimeView
	require.NoError(t,
		yaml.Unmarshal([]byte(output), &views),
	)

	require.Equal(t,
		[]freeTimeView{
			{Start: "2020-07-20T09:00:00Z", End: "2020-07-20T10:00:00Z", Duration: "1h0m0s"},
			{Start: "2020-07-20T11:00:00Z", End: "2020-07-20T17:00:00Z", Duration: "6h0m0s"},
		},
		views,
	)
}

func TestPoliciesCommand(t *testing.T) {
	t.Setenv("DAYSCHEDULER_POLICY", "")
	t.Setenv("DAYSCHEDULER_LOG_LEVEL", "")

	require.Equal(t,
		"longest-task-first\n",
		executeCommand(t, "policies"),
	)
}
