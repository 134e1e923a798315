package pubsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopic_PublishOrder(t *testing.T) {
	var topic Topic[int]
	var got []string

	topic.Subscribe(func(v int) { got = append(got, "first") })
	topic.Subscribe(func(v int) { got = append(got, "second") })
	topic.Publish(1)

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestTopic_Unsubscribe(t *testing.T) {
	var topic Topic[string]
	calls := 0

	sub := topic.Subscribe(func(string) { calls++ })
	topic.Publish("a")
	sub.Unsubscribe()
	sub.Unsubscribe()
	topic.Publish("b")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, topic.Len())
}

func TestTopic_UnsubscribeDuringPublish(t *testing.T) {
	var topic Topic[int]
	calls := 0

	var sub Subscription
	sub = topic.Subscribe(func(int) {
		calls++
		sub.Unsubscribe()
	})
	topic.Subscribe(func(int) { calls++ })

	topic.Publish(1)
	assert.Equal(t, 2, calls, "snapshot keeps the second handler for this publish")

	topic.Publish(2)
	assert.Equal(t, 3, calls)
}

func TestTopic_Clear(t *testing.T) {
	var topic Topic[int]
	topic.Subscribe(func(int) {})
	topic.Subscribe(func(int) {})

	topic.Clear()

	assert.Equal(t, 0, topic.Len())
}
