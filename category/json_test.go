package category_test

import (
	"encoding/json"
	"testing"

	"arbor/category"
	"arbor/table"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, c *category.Categorizer) *category.Categorizer {
	t.Helper()
	data, err := json.Marshal(c)
	require.NoError(t, err)
	decoded := &category.Categorizer{}
	require.NoError(t, json.Unmarshal(data, decoded))
	return decoded
}

func TestCategorizerJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		cells []table.Cell
		probe table.Cell
	}{
		{
			"strings",
			[]table.Cell{table.StringCell("b"), table.StringCell("a")},
			table.StringCell("a"),
		},
		{
			"integers",
			[]table.Cell{table.IntegerCell(5), table.IntegerCell(3)},
			table.IntegerCell(3),
		},
		{
			"bins",
			[]table.Cell{table.RealCell(0), table.RealCell(21)},
			table.RealCell(10),
		},
		{
			"intervals",
			[]table.Cell{table.IntervalCell(0, 10), table.IntervalCell(10, 20)},
			table.IntervalCell(10, 20),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := build(t, columnTable(t, tt.cells...))
			decoded := roundTrip(t, c)
			require.Equal(t, c.Kind(), decoded.Kind())
			require.Equal(t, c.Count(), decoded.Count())
			require.Equal(t, c.CategoryOf(tt.probe), decoded.CategoryOf(tt.probe))
			for id := 0; id < c.Count(); id++ {
				want, err := c.ValueOf(category.ID(id))
				require.NoError(t, err)
				got, err := decoded.ValueOf(category.ID(id))
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
		})
	}
}

func TestCategorizerJSONUnknownKind(t *testing.T) {
	decoded := &category.Categorizer{}
	require.Error(t, json.Unmarshal([]byte(`{"kind":"nonsense"}`), decoded))
}
