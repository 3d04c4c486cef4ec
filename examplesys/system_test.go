package examplesys

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_EchoRoundTrip(t *testing.T) {
	sys, err := New(nil)
	require.NoError(t, err)
	defer sys.Shutdown()

	res, err := sys.Echo("hello", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "HELLO", res.Text)
	assert.NotEmpty(t, res.By)
}

func TestSystem_EchoAllFansOutConcurrently(t *testing.T) {
	sys, err := New(nil)
	require.NoError(t, err)
	defer sys.Shutdown()

	texts := []string{"a", "bb", "ccc", "dddd", "eeeee"}
	results, err := sys.EchoAll(context.Background(), texts, time.Second)
	require.NoError(t, err)
	require.Len(t, results, len(texts))
	for i, text := range texts {
		assert.Equal(t, upper(text), results[i].Text)
	}
}
