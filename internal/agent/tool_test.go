package agent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func noopHandler(ctx context.Context, input json.RawMessage) Result {
	return TextResult("ok")
}

func TestRegistry_Register(t *testing.T) {
	reg, err := NewRegistry(
		Tool{Name: "one", Handler: noopHandler},
		Tool{Name: "two", Handler: noopHandler},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reg.List()) != 2 {
		t.Errorf("expected 2 tools, got %d", len(reg.List()))
	}
	if _, ok := reg.Get("one"); !ok {
		t.Error("registered tool not found")
	}
	if _, ok := reg.Get("missing"); ok {
		t.Error("unregistered tool found")
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	reg, _ := NewRegistry(Tool{Name: "dup", Handler: noopHandler})

	err := reg.Register(Tool{Name: "dup", Handler: noopHandler})
	if !errors.Is(err, ErrDuplicateTool) {
		t.Errorf("expected ErrDuplicateTool, got %v", err)
	}
}

func TestRegistry_RejectsInvalidTools(t *testing.T) {
	if _, err := NewRegistry(Tool{Handler: noopHandler}); err == nil {
		t.Error("expected error for nameless tool")
	}
	if _, err := NewRegistry(Tool{Name: "no-handler"}); err == nil {
		t.Error("expected error for handlerless tool")
	}
}

func TestRegistry_PreservesOrder(t *testing.T) {
	reg, _ := NewRegistry(
		Tool{Name: "c", Handler: noopHandler},
		Tool{Name: "a", Handler: noopHandler},
		Tool{Name: "b", Handler: noopHandler},
	)

	want := []string{"c", "a", "b"}
	for i, tool := range reg.List() {
		if tool.Name != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], tool.Name)
		}
	}
}

func TestDecodeInput(t *testing.T) {
	var args struct {
		Text string `json:"text"`
	}

	if err := DecodeInput(json.RawMessage(`{"text": "hello"}`), &args); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args.Text != "hello" {
		t.Errorf("expected hello, got %q", args.Text)
	}

	if err := DecodeInput(nil, &args); err != nil {
		t.Errorf("nil input should decode to nothing, got %v", err)
	}

	if err := DecodeInput(json.RawMessage(`{broken`), &args); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestResultHelpers(t *testing.T) {
	ok := TextResult("got %d rows", 3)
	if ok.IsError || ok.Text != "got 3 rows" {
		t.Errorf("unexpected result: %+v", ok)
	}

	bad := ErrorResult("failed: %s", "timeout")
	if !bad.IsError || bad.Text != "failed: timeout" {
		t.Errorf("unexpected error result: %+v", bad)
	}
}
