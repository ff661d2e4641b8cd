package live

import (
	"testing"

	"studydeck/internal/domain/models"
)

func TestSubscribeAndPublish(t *testing.T) {
	hub := NewHub()

	ch1, cancel1 := hub.Subscribe("user-1")
	ch2, cancel2 := hub.Subscribe("user-1")
	defer cancel1()
	defer cancel2()

	if got := hub.WatcherCount("user-1"); got != 2 {
		t.Fatalf("WatcherCount = %d, want 2", got)
	}

	hub.Publish("user-1", models.TodoEvent{Type: models.TodoCreated, ID: "todo-1"})

	for i, ch := range []<-chan models.TodoEvent{ch1, ch2} {
		select {
		case event := <-ch:
			if event.ID != "todo-1" {
				t.Errorf("watcher %d: event = %+v", i, event)
			}
		default:
			t.Errorf("watcher %d: no event delivered", i)
		}
	}
}

func TestPublishIsScopedToUser(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe("user-2")
	defer cancel()

	hub.Publish("user-1", models.TodoEvent{Type: models.TodoCreated, ID: "todo-1"})

	select {
	case event := <-ch:
		t.Errorf("unexpected event: %+v", event)
	default:
	}
}

func TestCancelClosesChannel(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe("user-1")
	cancel()

	if _, open := <-ch; open {
		t.Error("channel should be closed after cancel")
	}
	if got := hub.WatcherCount("user-1"); got != 0 {
		t.Errorf("WatcherCount = %d, want 0", got)
	}

	// Second cancel is a no-op, not a double close
	cancel()

	// Publishing to a user with no watchers is fine
	hub.Publish("user-1", models.TodoEvent{Type: models.TodoDeleted, ID: "todo-1"})
}

func TestSlowWatcherIsDropped(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe("user-1")
	defer cancel()

	// Fill the buffer and one more: the overflow publish detaches the watcher
	for i := 0; i <= subscriberBuffer; i++ {
		hub.Publish("user-1", models.TodoEvent{Type: models.TodoCreated, ID: "todo"})
	}

	if got := hub.WatcherCount("user-1"); got != 0 {
		t.Errorf("WatcherCount = %d, want 0 after overflow", got)
	}

	// Drain: buffered events then closed channel
	count := 0
	for range ch {
		count++
	}
	if count != subscriberBuffer {
		t.Errorf("drained %d events, want %d", count, subscriberBuffer)
	}
}
