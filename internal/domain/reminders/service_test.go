package reminders

import (
	"context"
	"errors"
	"testing"

	"aurora-app-go/internal/domain/records"
	"aurora-app-go/internal/repository/inmemory"
)

func newTestService() (*Service, records.Namespace) {
	repo := records.NewRepository(inmemory.NewRecordStore())
	return NewService(repo), records.NewNamespace("aurora", "ana@example.com")
}

func TestAddPrependsAndRequiresText(t *testing.T) {
	ctx := context.Background()
	service, ns := newTestService()

	if _, err := service.Add(ctx, ns, AddInput{Text: "   "}); !errors.Is(err, ErrTextRequired) {
		t.Fatalf("expected ErrTextRequired, got %v", err)
	}
	if !errors.Is(ErrTextRequired, records.ErrIncompleteInput) {
		t.Fatalf("text error must be an incomplete input error")
	}

	first, err := service.Add(ctx, ns, AddInput{Text: "pagar conta"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, _ := service.Add(ctx, ns, AddInput{Text: "ligar"})

	items, err := service.List(ctx, ns)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", items)
	}
}

func TestToggleAndPending(t *testing.T) {
	ctx := context.Background()
	service, ns := newTestService()

	a, _ := service.Add(ctx, ns, AddInput{Text: "a"})
	_, _ = service.Add(ctx, ns, AddInput{Text: "b"})

	toggled, err := service.Toggle(ctx, ns, a.ID)
	if err != nil || !toggled.Completed {
		t.Fatalf("toggle: %+v %v", toggled, err)
	}
	pending, err := service.Pending(ctx, ns)
	if err != nil || pending != 1 {
		t.Fatalf("pending = %d err=%v", pending, err)
	}

	if _, err := service.Toggle(ctx, ns, "missing"); !errors.Is(err, ErrReminderNotFound) {
		t.Fatalf("expected ErrReminderNotFound, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	service, ns := newTestService()
	a, _ := service.Add(ctx, ns, AddInput{Text: "a"})

	for i := 0; i < 2; i++ {
		if err := service.Delete(ctx, ns, a.ID); err != nil {
			t.Fatalf("delete #%d: %v", i+1, err)
		}
	}
	items, _ := service.List(ctx, ns)
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %+v", items)
	}
}
