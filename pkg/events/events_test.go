package events

import (
	"testing"
)

func TestEmitValidation(t *testing.T) {
	b := NewBus()
	if err := b.Emit("", "x"); err == nil {
		t.Error("Emit with empty topic should fail")
	}
	if be, ok := b.Emit("", "x").(*Error); !ok || be.Code != "INVALID_TOPIC" {
		t.Errorf("Emit error = %#v, want Code INVALID_TOPIC", be)
	}
	// No subscribers is not an error.
	if err := b.Emit("basket:changed", nil); err != nil {
		t.Errorf("Emit without subscribers: %v", err)
	}
}

func TestSubscribeValidation(t *testing.T) {
	b := NewBus()
	assertPanics(t, "empty topic", func() { b.Subscribe("", func(string, any) {}) })
	assertPanics(t, "nil handler", func() { b.Subscribe("basket:changed", nil) })
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestDispatchInSubscriptionOrder(t *testing.T) {
	b := NewBus()
	var got []string
	b.Subscribe("basket:changed", func(string, any) { got = append(got, "first") })
	b.Subscribe("*:changed", func(string, any) { got = append(got, "second") })
	b.Subscribe("basket:changed", func(string, any) { got = append(got, "third") })

	if err := b.Emit("basket:changed", nil); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("handlers run = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("handlers run = %v, want %v (pattern and exact subscriptions interleave by subscription order)", got, want)
		}
	}
}

func TestPatternDelivery(t *testing.T) {
	b := NewBus()
	var got []string
	b.Subscribe("order.*:change", func(topic string, _ any) { got = append(got, topic) })

	b.Emit("order.address:change", nil)
	b.Emit("contacts.email:change", nil)
	b.Emit("order.payment:change", nil)

	if len(got) != 2 || got[0] != "order.address:change" || got[1] != "order.payment:change" {
		t.Errorf("pattern subscriber saw %v, want only order.* topics", got)
	}
}

func TestPayloadDelivery(t *testing.T) {
	b := NewBus()
	var got any
	b.Subscribe("preview:changed", func(_ string, payload any) { got = payload })
	b.Emit("preview:changed", 42)
	if got != 42 {
		t.Errorf("payload = %v, want 42", got)
	}
}

func TestNestedEmitIsDepthFirst(t *testing.T) {
	b := NewBus()
	var got []string
	b.Subscribe("outer:run", func(string, any) {
		got = append(got, "outer-1")
		b.Emit("inner:run", nil)
	})
	b.Subscribe("inner:run", func(string, any) { got = append(got, "inner") })
	b.Subscribe("outer:run", func(string, any) { got = append(got, "outer-2") })

	b.Emit("outer:run", nil)

	want := []string{"outer-1", "inner", "outer-2"}
	for i := range want {
		if i >= len(got) || got[i] != want[i] {
			t.Fatalf("order = %v, want %v (nested emit must complete before remaining outer handlers)", got, want)
		}
	}
}

func TestSubscribeDuringEmitNotInvoked(t *testing.T) {
	b := NewBus()
	lateCalled := false
	b.Subscribe("tick:run", func(string, any) {
		b.Subscribe("tick:run", func(string, any) { lateCalled = true })
	})
	b.Emit("tick:run", nil)
	if lateCalled {
		t.Error("handler subscribed mid-emit must not run for that emit")
	}

	b.Emit("tick:run", nil)
	if !lateCalled {
		t.Error("handler subscribed mid-emit must run for the next emit")
	}
}

func TestUnsubscribe(t *testing.T) {
	b := NewBus()
	calls := 0
	unsub := b.Subscribe("basket:changed", func(string, any) { calls++ })

	b.Emit("basket:changed", nil)
	unsub()
	b.Emit("basket:changed", nil)
	unsub() // second call is harmless

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if n := b.SubscriberCount("basket:changed"); n != 0 {
		t.Errorf("SubscriberCount = %d, want 0", n)
	}
}

func TestUnsubscribeMidDispatch(t *testing.T) {
	b := NewBus()
	var unsubSecond func()
	var got []string

	b.Subscribe("tick:run", func(string, any) {
		got = append(got, "first")
		unsubSecond()
	})
	unsubSecond = b.Subscribe("tick:run", func(string, any) { got = append(got, "second") })

	b.Emit("tick:run", nil)

	if len(got) != 1 || got[0] != "first" {
		t.Errorf("got = %v; handler removed mid-dispatch should be skipped", got)
	}
}

func TestUnsubscribeSelfMidDispatch(t *testing.T) {
	b := NewBus()
	calls := 0
	var unsub func()
	unsub = b.Subscribe("tick:run", func(string, any) {
		calls++
		unsub()
	})

	b.Emit("tick:run", nil)
	b.Emit("tick:run", nil)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
