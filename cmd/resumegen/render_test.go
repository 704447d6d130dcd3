package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "me.json")
	require.NoError(t, os.WriteFile(input, []byte(`{
		"personalInfo": {"fullName": "Jane Doe", "email": "jane@example.com"},
		"experience": [{"company": "Acme", "title": "SRE", "startDate": "2021-03-01", "isCurrent": true}],
		"skills": {"languages": ["Go"], "Mobile": ["Swift"]}
	}`), 0o600))
	aliases := filepath.Join(dir, "aliases.yaml")
	require.NoError(t, os.WriteFile(aliases, []byte("aliases:\n  Mobile: frontend\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"render", "--input", input, "--format", "text", "--aliases", aliases})
	require.NoError(t, rootCmd.Execute())

	text := out.String()
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "SRE - Acme")
	assert.Contains(t, text, "Mar 2021 - Present")
	assert.Contains(t, text, "Frontend: Swift")

	out.Reset()
	rootCmd.SetArgs([]string{"render", "--input", input, "--format", "html", "--report", "--aliases", ""})
	require.NoError(t, rootCmd.Execute())

	var report map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Contains(t, report, "atsReport")
	assert.Contains(t, report, "metadata")
}
