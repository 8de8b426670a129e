package wheel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableWeights(t *testing.T) {
	table := DefaultTable()
	require.Equal(t, 4, table.Len())
	assert.InDelta(t, 100.0, table.Total(), 1e-9)
	assert.Equal(t, "Sin recompensa", table.Prize(0).Name)
	assert.Equal(t, "10% descuento", table.Prize(3).Name)
}

func TestPickBuckets(t *testing.T) {
	table := DefaultTable()

	// Cumulative bounds: 80, 87.5, 95, 100.
	tests := []struct {
		draw float64
		want int
	}{
		{0, 0},
		{79.99, 0},
		{80, 1},
		{87.49, 1},
		{87.5, 2},
		{94.99, 2},
		{95, 3},
		{99.99, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, table.pick(tt.draw), "draw %v", tt.draw)
	}
}

func TestPickFallsBackToFirstPrize(t *testing.T) {
	table := DefaultTable()
	assert.Equal(t, 0, table.pick(100))
	assert.Equal(t, 0, table.pick(100.5))
}

func TestSelectPrizeConvergesOnWeights(t *testing.T) {
	table := DefaultTable()
	rng := rand.New(rand.NewSource(1))

	const n = 200000
	counts := make([]int, table.Len())
	for i := 0; i < n; i++ {
		index, _ := table.SelectPrize(rng)
		counts[index]++
	}

	for i, prize := range table.Prizes() {
		got := float64(counts[i]) / n * 100
		assert.InDelta(t, prize.Weight, got, 0.5, "prize %s", prize.Name)
	}
}

func TestArcsPartitionTheCircle(t *testing.T) {
	table := DefaultTable()

	cursor := 0.0
	sum := 0.0
	for i := 0; i < table.Len(); i++ {
		start, length := table.Arc(i)
		assert.InDelta(t, cursor, start, 1e-9, "segment %d starts where %d ended", i, i-1)
		assert.Greater(t, length, 0.0)
		cursor = start + length
		sum += length
	}
	assert.InDelta(t, 2*math.Pi, sum, 1e-9)

	// Arc sizes mirror the weights.
	start, length := table.Arc(0)
	assert.Zero(t, start)
	assert.InDelta(t, 2*math.Pi*0.8, length, 1e-9)
}

func TestAngleForPrizeCentersSegmentUnderPointer(t *testing.T) {
	table := DefaultTable()

	for i := 0; i < table.Len(); i++ {
		rotation := table.AngleForPrize(i)
		start, length := table.Arc(i)
		center := rotation + start + length/2
		assert.InDelta(t, -math.Pi/2, center, 1e-9, "rotated center of segment %d sits at the pointer", i)
	}
}

func TestDisplayPrizesIncludeUnwinnableEntries(t *testing.T) {
	display := DisplayPrizes()
	require.Len(t, display, 7)

	playable := make(map[string]bool)
	for _, p := range DefaultPrizes() {
		playable[p.Name] = true
	}
	assert.True(t, playable[display[0].Name])
	assert.False(t, playable["100% descuento"])
	assert.Equal(t, "🏆", display[6].Icon)
}
