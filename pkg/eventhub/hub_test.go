package eventhub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_FanOut(t *testing.T) {
	// Two independent subscribers both receive the identical snapshot,
	// exactly once per publish.
	hub := New[[]int]()
	ctx := context.Background()

	var first, second [][]int
	hub.Subscribe(func(v []int) { first = append(first, v) })
	hub.Subscribe(func(v []int) { second = append(second, v) })

	hub.Publish(ctx, []int{1, 2, 3})

	assert.Equal(t, [][]int{{1, 2, 3}}, first)
	assert.Equal(t, [][]int{{1, 2, 3}}, second)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := New[string]()
	ctx := context.Background()

	var got []string
	unsubscribe := hub.Subscribe(func(v string) { got = append(got, v) })
	assert.Equal(t, 1, hub.Len())

	hub.Publish(ctx, "a")
	unsubscribe()
	hub.Publish(ctx, "b")

	assert.Equal(t, []string{"a"}, got)
	assert.Equal(t, 0, hub.Len())

	// Unsubscribe is idempotent
	unsubscribe()
	assert.Equal(t, 0, hub.Len())
}

func TestHub_PanickingListenerIsIsolated(t *testing.T) {
	hub := New[int]()
	ctx := context.Background()

	var got []int
	hub.Subscribe(func(int) { panic("listener gone bad") })
	hub.Subscribe(func(v int) { got = append(got, v) })

	assert.NotPanics(t, func() { hub.Publish(ctx, 42) })
	assert.Equal(t, []int{42}, got)
}

func TestHub_PublishWithNoListeners(t *testing.T) {
	hub := New[int]()
	assert.NotPanics(t, func() { hub.Publish(context.Background(), 1) })
}
