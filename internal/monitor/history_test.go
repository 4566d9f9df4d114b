package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryBufferPush(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		pushed   int
		expected int
	}{
		{
			name:     "under capacity",
			size:     5,
			pushed:   3,
			expected: 3,
		},
		{
			name:     "at capacity",
			size:     5,
			pushed:   5,
			expected: 5,
		},
		{
			name:     "over capacity evicts oldest",
			size:     5,
			pushed:   12,
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newHistoryBuffer(tt.size)
			for i := 0; i < tt.pushed; i++ {
				buf.push(Sample{Value: float64(i)})
			}
			assert.Equal(t, tt.expected, buf.len())
		})
	}
}

func TestHistoryBufferChronologicalOrder(t *testing.T) {
	buf := newHistoryBuffer(5)
	for i := 0; i < 8; i++ {
		buf.push(Sample{Value: float64(i)})
	}

	// After 8 pushes into a 5-slot buffer, samples 3..7 survive, oldest first
	all := buf.getAll()
	require.Len(t, all, 5)
	for i, s := range all {
		assert.Equal(t, float64(i+3), s.Value)
	}
}

func TestHistoryBufferGetLast(t *testing.T) {
	buf := newHistoryBuffer(10)
	for i := 0; i < 6; i++ {
		buf.push(Sample{Value: float64(i)})
	}

	tests := []struct {
		name     string
		count    int
		expected []float64
	}{
		{
			name:     "subset returns newest",
			count:    3,
			expected: []float64{3, 4, 5},
		},
		{
			name:     "more than stored returns all",
			count:    20,
			expected: []float64{0, 1, 2, 3, 4, 5},
		},
		{
			name:     "zero returns nothing",
			count:    0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buf.getLast(tt.count)
			require.Len(t, got, len(tt.expected))
			for i, want := range tt.expected {
				assert.Equal(t, want, got[i].Value)
			}
		})
	}
}

func TestHistoryBufferGaps(t *testing.T) {
	buf := newHistoryBuffer(4)
	buf.push(Sample{Value: 100})
	buf.push(Sample{Gap: true})
	buf.push(Sample{Value: 250})

	all := buf.getAll()
	require.Len(t, all, 3)
	assert.False(t, all[0].Gap)
	assert.True(t, all[1].Gap)
	assert.False(t, all[2].Gap)
	assert.Equal(t, 250.0, all[2].Value)
}

func TestHistoryBufferDefaultSize(t *testing.T) {
	buf := newHistoryBuffer(0)
	for i := 0; i < HistorySize+10; i++ {
		buf.push(Sample{Value: float64(i)})
	}
	assert.Equal(t, HistorySize, buf.len())
}

func TestHistoryBufferEmpty(t *testing.T) {
	buf := newHistoryBuffer(5)
	assert.Equal(t, 0, buf.len())
	assert.Nil(t, buf.getAll())
}
