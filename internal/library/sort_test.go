package library

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(raws []Raw) []string {
	out := make([]string, len(raws))
	for i, raw := range raws {
		out[i], _ = raw["name"].(string)
	}
	return out
}

func TestSortKey(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want float64
	}{
		{"string id", Raw{"id": "12"}, 12},
		{"number id", Raw{"id": json.Number("3")}, 3},
		{"legacy ID", Raw{"ID": "5"}, 5},
		{"fractional", Raw{"id": "1.5"}, 1.5},
		{"negative", Raw{"id": "-2"}, -2},
		{"padded", Raw{"id": " 4 "}, 4},
		{"missing", Raw{"name": "x"}, 0},
		{"non numeric", Raw{"id": "abc"}, 0},
		{"NaN", Raw{"id": "NaN"}, 0},
		{"overflow", Raw{"id": "1e400"}, math.Inf(1)},
		{"negative overflow", Raw{"id": "-1e400"}, math.Inf(-1)},
		{"underflow", Raw{"id": "1e-400"}, 0},
		{"Infinity", Raw{"id": "Infinity"}, math.Inf(1)},
		{"inf", Raw{"id": "inf"}, 0},
		{"Inf", Raw{"id": "-Inf"}, 0},
		{"lowercase infinity", Raw{"id": "infinity"}, 0},
		{"nil element", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SortKey(tt.raw))
		})
	}
}

func TestSortByID_Ascending(t *testing.T) {
	raws := []Raw{
		{"id": "10", "name": "ten"},
		{"id": "2", "name": "two"},
		{"id": json.Number("1"), "name": "one"},
	}

	assert.Equal(t, []string{"one", "two", "ten"}, names(SortByID(raws)))
}

func TestSortByID_Stable(t *testing.T) {
	raws := []Raw{
		{"id": "1", "name": "a"},
		{"id": "0", "name": "b"},
		{"id": "1", "name": "c"},
		{"name": "d"},
		{"id": "x", "name": "e"},
		{"id": "0", "name": "f"},
		{"id": "1", "name": "g"},
	}

	// b, d, e, f all sort as 0 and keep their input order.
	assert.Equal(t, []string{"b", "d", "e", "f", "a", "c", "g"}, names(SortByID(raws)))
}

func TestSortByID_NonDecreasing(t *testing.T) {
	raws := []Raw{
		{"id": "9"}, {"id": "-1"}, {"id": "3.5"}, {}, {"id": "3"}, nil, {"id": "100"}, {"id": "oops"},
	}

	sorted := SortByID(raws)
	assert.Len(t, sorted, len(raws))
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, SortKey(sorted[i-1]), SortKey(sorted[i]), "position %d", i)
	}
}

func TestSortByID_DoesNotMutateInput(t *testing.T) {
	raws := []Raw{{"id": "2", "name": "b"}, {"id": "1", "name": "a"}}

	_ = SortByID(raws)

	assert.Equal(t, []string{"b", "a"}, names(raws))
}
