package order

import (
	"sort"
	"testing"
)

func TestAlphabeticalIgnoresCase(t *testing.T) {
	if Alphabetical("apple", "Banana") >= 0 {
		t.Fatalf("expected apple before Banana")
	}
	if Alphabetical("Zeta", "alpha") <= 0 {
		t.Fatalf("expected Zeta after alpha")
	}
}

func TestAlphabeticalTieBreaksOnBytes(t *testing.T) {
	if got := Alphabetical("Work", "work"); got == 0 {
		t.Fatalf("expected case variants to have a deterministic order, got 0")
	}
	if Alphabetical("Work", "work") != -Alphabetical("work", "Work") {
		t.Fatalf("expected comparator to be antisymmetric")
	}
	if Alphabetical("same", "same") != 0 {
		t.Fatalf("expected equal strings to compare equal")
	}
}

func TestLessSortsTags(t *testing.T) {
	tags := []string{"#foo", "#Bar", "#baz"}
	sort.Slice(tags, func(i, j int) bool { return Less(tags[i], tags[j]) })

	want := []string{"#Bar", "#baz", "#foo"}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, tags)
		}
	}
}
