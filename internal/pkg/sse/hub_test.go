package sse

import "testing"

func TestHubPublishReachesSubscribers(t *testing.T) {
	h := NewHub()

	ch, cleanup := h.Subscribe("post-1")
	defer cleanup()

	h.Publish("post-1", Event{PostID: "post-1", Event: "occupancy_changed"})

	select {
	case ev := <-ch:
		if ev.Event != "occupancy_changed" {
			t.Errorf("got event %q, want occupancy_changed", ev.Event)
		}
	default:
		t.Fatal("subscriber did not receive the published event")
	}

	h.Publish("post-2", Event{PostID: "post-2", Event: "occupancy_changed"})
	select {
	case ev := <-ch:
		t.Errorf("received event for another post: %+v", ev)
	default:
	}
}

func TestHubSubscriberCount(t *testing.T) {
	h := NewHub()

	if got := h.SubscriberCount("post-1"); got != 0 {
		t.Errorf("SubscriberCount = %d, want 0 before any subscription", got)
	}

	_, cleanupA := h.Subscribe("post-1")
	_, cleanupB := h.Subscribe("post-1")
	if got := h.SubscriberCount("post-1"); got != 2 {
		t.Errorf("SubscriberCount = %d, want 2", got)
	}

	cleanupA()
	if got := h.SubscriberCount("post-1"); got != 1 {
		t.Errorf("SubscriberCount = %d, want 1 after one cleanup", got)
	}

	cleanupB()
	if got := h.SubscriberCount("post-1"); got != 0 {
		t.Errorf("SubscriberCount = %d, want 0 after all cleanups", got)
	}
}
