package normalization

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BenjaNor/FinalProject/internal/domain"
	"github.com/BenjaNor/FinalProject/internal/storage"
	"github.com/BenjaNor/FinalProject/internal/storage/memory"
)

func TestRunner_StoreAndNormalizeAll(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(memory.NewRecordStore())

	joined := JoinMetrics(JoinInput{
		Assets:  domain.MetricSeries{"AAA": {2022: 1, 2021: 1, 2020: 1}, "BBB": {2022: 1}},
		Revenue: domain.MetricSeries{"AAA": {2022: 7, 2021: 4, 2020: 2}},
	})

	require.NoError(t, runner.Store(ctx, joined))

	ds, err := runner.NormalizeAll(ctx)
	require.NoError(t, err)

	require.Len(t, ds["AAA"], 3)
	assert.Nil(t, ds["AAA"][0].DeltaRevenue)
	assert.Equal(t, 2.0, *ds["AAA"][1].DeltaRevenue)
	assert.Equal(t, 3.0, *ds["AAA"][2].DeltaRevenue)

	require.Len(t, ds["BBB"], 1)
	assert.False(t, ds["BBB"][0].HasDeltas())
}

func TestRunner_StoreTwiceFails(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(memory.NewRecordStore())

	joined := JoinMetrics(JoinInput{Assets: domain.MetricSeries{"AAA": {2022: 1}}})
	require.NoError(t, runner.Store(ctx, joined))

	err := runner.Store(ctx, joined)
	assert.True(t, errors.Is(err, storage.ErrDuplicateKey), "expected ErrDuplicateKey, got %v", err)
}

func TestRunner_NormalizeTickerNotFound(t *testing.T) {
	runner := NewRunner(memory.NewRecordStore())

	_, err := runner.NormalizeTicker(context.Background(), "NOPE")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestRunner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	runner := NewRunner(memory.NewRecordStore())
	require.NoError(t, runner.Store(ctx, JoinMetrics(JoinInput{Assets: domain.MetricSeries{"AAA": {2022: 1}}})))

	cancel()
	_, err := runner.NormalizeAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
