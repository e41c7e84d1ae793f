package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObservable_NotifiesEachSubscriberOnceInOrder(t *testing.T) {
	obs := NewObservable([]int{1})

	var calls []string
	var seen [][]int
	obs.Subscribe(func() {
		calls = append(calls, "first")
		seen = append(seen, obs.Get())
	})
	obs.Subscribe(func() { calls = append(calls, "second") })
	obs.Subscribe(func() { calls = append(calls, "third") })

	obs.Set([]int{1, 2})

	assert.Equal(t, []string{"first", "second", "third"}, calls)
	assert.Equal(t, [][]int{{1, 2}}, seen)
}

func TestObservable_UnsubscribeDuringNotifyKeepsPendingListeners(t *testing.T) {
	obs := NewObservable(0)

	var secondCalls int
	var unsubscribeSecond func()
	obs.Subscribe(func() { unsubscribeSecond() })
	unsubscribeSecond = obs.Subscribe(func() { secondCalls++ })

	assert.NotPanics(t, func() { obs.Set(1) })
	assert.Equal(t, 1, secondCalls, "pending listener still runs in the current pass")

	obs.Set(2)
	assert.Equal(t, 1, secondCalls, "removed listener is not called again")
	assert.Equal(t, 1, obs.Len())
}

func TestObservable_UnsubscribeTwiceIsSafe(t *testing.T) {
	obs := NewObservable("a")
	unsubscribe := obs.Subscribe(func() {})
	other := 0
	obs.Subscribe(func() { other++ })

	unsubscribe()
	unsubscribe()

	obs.Set("b")
	assert.Equal(t, 1, other)
	assert.Equal(t, 1, obs.Len())
}

func TestObservable_ReentrantMutation(t *testing.T) {
	obs := NewObservable(0)

	var observed []int
	obs.Subscribe(func() {
		v := obs.Get()
		observed = append(observed, v)
		if v == 1 {
			obs.Set(2)
		}
	})

	obs.Set(1)

	assert.Equal(t, []int{1, 2}, observed)
	assert.Equal(t, 2, obs.Get())
}

func TestObservable_UpdateWithoutChangeDoesNotNotify(t *testing.T) {
	obs := NewObservable(5)
	calls := 0
	obs.Subscribe(func() { calls++ })

	changed := obs.Update(func(v int) (int, bool) { return v, false })

	assert.False(t, changed)
	assert.Zero(t, calls)
}
