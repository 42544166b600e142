package voronoi

import "testing"

func TestEventsDispatchesBufferedEventsOnFlush(t *testing.T) {
	e := NewEvents()

	var got []EventType
	e.Subscribe(EventSiteInserted, func(ev Event) {
		got = append(got, ev.Type())
	})

	e.emit(SiteInsertedEvent{NumNew: 2})
	e.emit(SiteInsertedEvent{NumNew: 3})

	if len(got) != 0 {
		t.Fatalf("expected no dispatch before flush, got %d", len(got))
	}

	e.flush()

	if len(got) != 2 {
		t.Fatalf("expected 2 dispatched events, got %d", len(got))
	}
	for _, ty := range got {
		if ty != EventSiteInserted {
			t.Fatalf("expected EventSiteInserted, got %v", ty)
		}
	}
}

func TestEventsFlushClearsTheBuffer(t *testing.T) {
	e := NewEvents()
	calls := 0
	e.Subscribe(EventSiteRejected, func(ev Event) { calls++ })

	e.emit(SiteRejectedEvent{Err: ErrInvalidSite})
	e.flush()
	e.flush()

	if calls != 1 {
		t.Fatalf("expected exactly 1 call across two flushes, got %d", calls)
	}
}

func TestEventsIgnoresUnsubscribedTypes(t *testing.T) {
	e := NewEvents()
	e.emit(FaceRepairedEvent{})
	e.flush() // must not panic with no listeners registered
}
