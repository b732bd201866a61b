package arg

import (
	"reflect"
	"testing"
)

func TestHandleQueryJoinsArgs(t *testing.T) {
	if got := HandleQuery([]string{"project", "plan "}); got != "project plan" {
		t.Fatalf("expected %q, got %q", "project plan", got)
	}
	if got := HandleQuery(nil); got != "" {
		t.Fatalf("expected empty query, got %q", got)
	}
}

func TestHandleRef(t *testing.T) {
	if got := HandleRef([]string{" Inbox ", "ignored"}); got != "Inbox" {
		t.Fatalf("expected Inbox, got %q", got)
	}
	if got := HandleRef(nil); got != "" {
		t.Fatalf("expected empty ref, got %q", got)
	}
}

func TestHandleTags(t *testing.T) {
	got := HandleTags([]string{"#work, daily", "", "ideas"})
	want := []string{"work", "daily", "ideas"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
