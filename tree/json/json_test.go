package json_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"arbor"
	"arbor/table"
	treejson "arbor/tree/json"

	"github.com/stretchr/testify/require"
)

func TestTreeRoundTrip(t *testing.T) {
	const csv = `A,V,G
x,1,Y
x,2,Y
y,3,N
y,4,N
x,5,Y
y,6,N
x,7,Y
y,8,N
`
	tbl, err := table.ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	grown, err := arbor.Grow(context.Background(), tbl, table.Select(tbl), arbor.Params{Goal: 2, Threshold: 0})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, treejson.WriteTree(&buf, grown))

	decoded, err := treejson.ReadTree(&buf)
	require.NoError(t, err)
	require.Equal(t, grown.Goal, decoded.Goal)
	require.Equal(t, grown.ColOffset, decoded.ColOffset)
	require.Equal(t, grown.Names, decoded.Names)
	require.Equal(t, grown.Root, decoded.Root)
	require.Equal(t, grown.String(), decoded.String())

	// The decoded tree classifies exactly like the original.
	for row := 0; row < tbl.Rows(); row++ {
		want, err := grown.Classify(tbl.Row(row))
		require.NoError(t, err)
		got, err := decoded.Classify(tbl.Row(row))
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestReadTreeRejectsGarbage(t *testing.T) {
	_, err := treejson.ReadTree(strings.NewReader("{"))
	require.Error(t, err)
	_, err = treejson.ReadTree(strings.NewReader(`{"root":{},"categorizers":[],"goal":0}`))
	require.Error(t, err)
	_, err = treejson.ReadTree(strings.NewReader(`{"root":{},"categorizers":[{"kind":"strings","strings":["a"]}],"goal":3}`))
	require.Error(t, err)
}
