package ctxutil

import (
	"context"
	"testing"
)

func TestOwnerID_RoundTrip(t *testing.T) {
	ctx := WithOwnerID(context.Background(), "user-123")

	id, ok := OwnerIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected owner ID to be present")
	}
	if id != "user-123" {
		t.Errorf("got %q, want %q", id, "user-123")
	}
}

func TestOwnerID_Missing(t *testing.T) {
	if _, ok := OwnerIDFromCtx(context.Background()); ok {
		t.Error("expected no owner ID in empty context")
	}
}

func TestOwnerID_EmptyStringIsAbsent(t *testing.T) {
	ctx := WithOwnerID(context.Background(), "")
	if _, ok := OwnerIDFromCtx(ctx); ok {
		t.Error("empty owner ID should be treated as absent")
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	if got := RequestIDFromCtx(ctx); got != "req-42" {
		t.Errorf("got %q, want %q", got, "req-42")
	}
}

func TestRequestID_Missing(t *testing.T) {
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}
