// Package pubsub provides a typed, synchronous publish/subscribe topic.
//
// Handlers run on the publisher's goroutine in subscription order. A topic
// is not safe for concurrent use; the simulation drives every topic from
// its single update loop.
package pubsub

// Handler receives a published payload.
type Handler[T any] func(T)

type subscriber[T any] struct {
	id uint64
	fn Handler[T]
}

// Topic is a single event channel with a fixed payload type.
type Topic[T any] struct {
	subs   []subscriber[T]
	nextID uint64
}

// Subscription cancels a handler registered with Topic.Subscribe.
type Subscription struct {
	cancel func()
}

// Unsubscribe removes the handler. Calling it more than once is a no-op.
func (s Subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Subscribe appends fn to the handler list.
func (t *Topic[T]) Subscribe(fn Handler[T]) Subscription {
	t.nextID++
	id := t.nextID

	// Copy on write so a Publish in progress keeps iterating its snapshot.
	subs := make([]subscriber[T], len(t.subs), len(t.subs)+1)
	copy(subs, t.subs)
	t.subs = append(subs, subscriber[T]{id: id, fn: fn})

	return Subscription{cancel: func() { t.remove(id) }}
}

func (t *Topic[T]) remove(id uint64) {
	for i, s := range t.subs {
		if s.id != id {
			continue
		}
		subs := make([]subscriber[T], 0, len(t.subs)-1)
		subs = append(subs, t.subs[:i]...)
		subs = append(subs, t.subs[i+1:]...)
		t.subs = subs
		return
	}
}

// Publish calls every handler with v, in subscription order.
func (t *Topic[T]) Publish(v T) {
	for _, s := range t.subs {
		s.fn(v)
	}
}

// Len returns the number of handlers.
func (t *Topic[T]) Len() int {
	return len(t.subs)
}

// Clear drops every handler.
func (t *Topic[T]) Clear() {
	t.subs = nil
}
