package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/court-finder/internal/catalog"
)

func TestSummaryCmd_Text(t *testing.T) {
	catalogPath = ""
	cmd := summaryCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Coverage Summary:")
	assert.Contains(t, out.String(), "- Total: 410 courts covering all 50 US states")
}

func TestSummaryCmd_JSON(t *testing.T) {
	catalogPath = ""
	cmd := summaryCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--json"})

	require.NoError(t, cmd.Execute())

	var summary catalog.Summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &summary))
	assert.Equal(t, 410, summary.Total)
	assert.Len(t, summary.Tiers, 3)
}

func TestSeedCmd_DryRun(t *testing.T) {
	catalogPath = ""
	cmd := seedCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dry-run"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Dry run: 410 courts would be inserted")
}
