package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSizeKB(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"45 KB", 45, true},
		{"2 MB", 2048, true},
		{"1.5MB", 1536, true},
		{"about 12.25 KB total", 12.25, true},
		{"Unknown size", 0, false},
		{"3 GB", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSizeKB(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatSizeKB(t *testing.T) {
	assert.Equal(t, "0 KB", FormatSizeKB(0))
	assert.Equal(t, "45 KB", FormatSizeKB(45))
	assert.Equal(t, "1023 KB", FormatSizeKB(1023))
	assert.Equal(t, "1.0 MB", FormatSizeKB(1024))
	assert.Equal(t, "2.0 MB", FormatSizeKB(2093))
}

func TestComputeStats(t *testing.T) {
	raws := []Raw{
		{"name": "a", "size": "45 KB"},
		{"name": "b", "size": "2 MB"},
		{"name": "c"},
		{"size": "not a size"},
		nil,
	}

	stats := ComputeStats(raws)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, float64(2093), stats.TotalSizeKB)
	assert.Equal(t, "2.0 MB", stats.TotalSize)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, "0 KB", stats.TotalSize)
}
