// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/nsuurmey/fitness-file-fixing/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.CatalogConfig{CatalogDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecord(n int, at time.Time) types.ConversionRecord {
	return types.ConversionRecord{
		ActivitySummary: types.ActivitySummary{
			Sport:               "Biking",
			ActivityID:          at.Format(time.RFC3339),
			StartTime:           at,
			Laps:                1,
			Trackpoints:         100 * n,
			TotalDistanceMeters: float64(1000 * n),
			Duration:            20 * time.Minute,
		},
		InputPath:   "ride.tcx",
		OutputPath:  "ride_fixed.tcx",
		ConvertedAt: at.Add(time.Hour),
	}
}

func TestStoreRecordAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		require.NoError(t, store.Record(ctx, sampleRecord(i, base.Add(time.Duration(i)*time.Hour))))
	}

	records, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest first.
	assert.Equal(t, 300, records[0].Trackpoints)
	assert.Equal(t, 100, records[2].Trackpoints)

	first := records[2]
	assert.Equal(t, "Biking", first.Sport)
	assert.Equal(t, 1, first.Laps)
	assert.InDelta(t, 1000, first.TotalDistanceMeters, 1e-9)
	assert.Equal(t, 20*time.Minute, first.Duration)
	assert.Equal(t, base.Add(time.Hour), first.StartTime.UTC())
	assert.False(t, first.ConvertedAt.IsZero())
	assert.NotZero(t, first.ID)
}

func TestStoreListLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 1; i <= 5; i++ {
		require.NoError(t, store.Record(ctx, sampleRecord(i, base.Add(time.Duration(i)*time.Hour))))
	}

	records, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	all, err := store.List(ctx, -1)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestStoreRecordFillsConvertedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := sampleRecord(1, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	rec.ConvertedAt = time.Time{}
	require.NoError(t, store.Record(ctx, rec))

	records, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.WithinDuration(t, time.Now(), records[0].ConvertedAt, time.Minute)
}

func TestStoreExportYAML(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Record(ctx, sampleRecord(1, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))))

	var buf bytes.Buffer
	require.NoError(t, store.ExportYAML(ctx, &buf))

	var payload struct {
		Conversions []types.ConversionRecord `yaml:"conversions"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &payload))
	require.Len(t, payload.Conversions, 1)
	assert.Equal(t, "Biking", payload.Conversions[0].Sport)
	assert.Equal(t, "ride_fixed.tcx", payload.Conversions[0].OutputPath)
}

func TestStoreExportJSON(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Record(ctx, sampleRecord(1, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))))

	var buf bytes.Buffer
	require.NoError(t, store.ExportJSON(ctx, &buf))

	var payload struct {
		Conversions []types.ConversionRecord `json:"conversions"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	require.Len(t, payload.Conversions, 1)
	assert.Equal(t, 100, payload.Conversions[0].Trackpoints)
}
