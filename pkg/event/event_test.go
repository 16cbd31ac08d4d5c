// pkg/event/event_test.go
package event

import "testing"

func TestBus_PublishReachesSubscribers(t *testing.T) {
	bus := NewBus()

	var got []Type
	bus.Subscribe(MissileFired, func(e Event) { got = append(got, e.GetType()) })
	bus.Subscribe(MissileFired, func(e Event) { got = append(got, e.GetType()) })

	bus.Publish(&MissileFiredEvent{
		BaseEvent: BaseEvent{EventType: MissileFired},
		PlayerID:  "1",
	})

	if len(got) != 2 {
		t.Errorf("handlers called %d times, expected 2", len(got))
	}
}

func TestBus_PublishOnlyMatchingType(t *testing.T) {
	bus := NewBus()

	calls := 0
	bus.Subscribe(PlayerJoined, func(Event) { calls++ })

	bus.Publish(&BaseEvent{EventType: FrameAdvanced})

	if calls != 0 {
		t.Errorf("handler for %q called on %q event", PlayerJoined, FrameAdvanced)
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	bus.Publish(&BaseEvent{EventType: GameStarted}) // must not panic
}

func TestFrameAdvancedEvent_CarriesPayload(t *testing.T) {
	bus := NewBus()

	var tick uint64
	var dt float64
	bus.Subscribe(FrameAdvanced, func(e Event) {
		frame := e.(*FrameAdvancedEvent)
		tick, dt = frame.Tick, frame.DeltaTime
	})

	bus.Publish(&FrameAdvancedEvent{
		BaseEvent: BaseEvent{EventType: FrameAdvanced},
		Tick:      7,
		DeltaTime: 0.25,
	})

	if tick != 7 || dt != 0.25 {
		t.Errorf("payload = (%d, %g), expected (7, 0.25)", tick, dt)
	}
}
