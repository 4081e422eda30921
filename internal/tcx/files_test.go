// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tcx

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsuurmey/fitness-file-fixing/pkg/types"
)

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ride.tcx")
	out := filepath.Join(dir, "ride_fixed.tcx")
	require.NoError(t, os.WriteFile(in, []byte(pelotonExport), 0o644))

	rep, sum, err := New(types.ConvertConfig{}).ConvertFile(in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "<Creator")
	assert.NotContains(t, string(data), "<Resistance>")

	assert.Equal(t, 3, rep.Trackpoints)
	assert.Equal(t, "Biking", sum.Sport)
	assert.Equal(t, 3, sum.Trackpoints)
	assert.InDelta(t, 58.2, sum.TotalDistanceMeters, 1e-9)

	// No stray temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestConvertFileLeavesOutputUntouchedOnFailure(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "broken.tcx")
	out := filepath.Join(dir, "out.tcx")
	require.NoError(t, os.WriteFile(in, []byte("<TrainingCenterDatabase>"), 0o644))
	require.NoError(t, os.WriteFile(out, []byte("previous contents"), 0o644))

	_, _, err := New(types.ConvertConfig{}).ConvertFile(in, out)
	require.Error(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous contents", string(data), "failed conversion must not overwrite the destination")
}

func TestConvertBatch(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "fixed")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.tcx"), []byte(pelotonExport), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.tcx"), []byte("<not-closed"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	var log bytes.Buffer
	result, err := New(types.ConvertConfig{}).ConvertBatch(dir, outDir, &log)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Converted)
	assert.Equal(t, 1, result.Failed)
	assert.True(t, result.HasFailures())
	assert.Contains(t, log.String(), "converted: a.tcx")
	assert.Contains(t, log.String(), "failed:    b.tcx")

	_, err = os.Stat(filepath.Join(outDir, "a_fixed.tcx"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "b_fixed.tcx"))
	assert.True(t, os.IsNotExist(err), "failed file must produce no output")
}

func TestOutputName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ride.tcx", "ride_fixed.tcx"},
		{"ride.TCX", "ride_fixed.TCX"},
		{"noext", "noext_fixed"},
	}
	for _, tt := range tests {
		if got := OutputName(tt.in); got != tt.want {
			t.Errorf("OutputName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	doc, err := Load([]byte(pelotonExport))
	require.NoError(t, err)

	sum := Summarize(doc)
	assert.Equal(t, "Biking", sum.Sport)
	assert.Equal(t, "2026-08-01T10:00:00Z", sum.ActivityID)
	assert.Equal(t, 1, sum.Laps)
	assert.Equal(t, 3, sum.Trackpoints)
	assert.InDelta(t, 58.2, sum.TotalDistanceMeters, 1e-9)
	assert.Equal(t, "10s", sum.Duration.String())
	assert.False(t, sum.StartTime.IsZero())
	assert.True(t, strings.HasPrefix(sum.StartTime.UTC().Format("2006-01-02"), "2026-08-01"))
}
