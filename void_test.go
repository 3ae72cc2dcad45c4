package result

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVoidSuccess(t *testing.T) {
	require := require.New(t)

	r := VoidSuccess[string]()
	require.False(r.HasError())
	require.True(r.OK())
	require.NotPanics(r.Unwrap)
}

func TestVoidFailure(t *testing.T) {
	require := require.New(t)

	r := VoidFailure("void error")
	require.True(r.HasError())
	require.False(r.OK())
	require.Equal("void error", r.Err())
}

func TestVoidZeroValue(t *testing.T) {
	require := require.New(t)

	var r Void[string]
	require.True(r.OK())
	require.NotPanics(r.Unwrap)
}

func TestVoidReassignment(t *testing.T) {
	require := require.New(t)

	r := VoidSuccess[string]()
	r = VoidFailure("boom")
	require.True(r.HasError())
	require.Equal("boom", r.Err())

	r = VoidSuccess[string]()
	require.True(r.OK())
}

func TestVoidMapRunsOnSuccess(t *testing.T) {
	require := require.New(t)

	calls := 0
	r := VoidSuccess[string]().Map(func() { calls++ })
	require.True(r.OK())
	require.Equal(1, calls)
}

func TestVoidMapSkipsOnFailure(t *testing.T) {
	require := require.New(t)

	r := VoidFailure("boom").Map(func() {
		t.Fatal("map function called on a failed void result")
	})
	require.True(r.HasError())
	require.Equal("boom", r.Err())
}
