package actor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuture_CompleteValue(t *testing.T) {
	f := NewFuture()
	assert.False(t, f.IsDone())

	ok := f.CompleteValue(42)
	assert.True(t, ok)
	assert.True(t, f.IsDone())

	v, err := f.Await(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestFuture_SecondCompleteIsNoop(t *testing.T) {
	f := NewFuture()
	require.True(t, f.CompleteValue("first"))
	assert.False(t, f.CompleteValue("second"))
	assert.False(t, f.CompleteError(assert.AnError))

	v, err := f.Await(time.Second)
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

func TestFuture_AwaitTimeout(t *testing.T) {
	f := NewFuture()
	_, err := f.Await(10 * time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestFuture_AwaitBlocksUntilComplete(t *testing.T) {
	f := NewFuture()
	go func() {
		time.Sleep(20 * time.Millisecond)
		f.CompleteValue("done")
	}()

	v, err := f.Await(time.Second)
	require.NoError(t, err)
	assert.Equal(t, "done", v)
}
