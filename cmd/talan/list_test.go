package main

import "testing"

func TestCraftListAdd(t *testing.T) {
	var l craftList
	if l.add("Weaver", "   ") {
		t.Error("blank item added")
	}
	if !l.add("Weaver", " Cotton Yarn ") {
		t.Fatal("add failed")
	}
	if l.entries[0].item != "Cotton Yarn" {
		t.Errorf("item = %q, want trimmed", l.entries[0].item)
	}
	if l.add("Weaver", "cotton yarn") {
		t.Error("duplicate open task added")
	}
	if !l.add("Alchemist", "cotton yarn") {
		t.Error("same item for another job rejected")
	}
}

func TestCraftListDoneSortsLast(t *testing.T) {
	var l craftList
	l.add("Carpenter", "Maple Lumber")
	l.add("Carpenter", "Ash Lumber")
	l.add("Carpenter", "Elm Lumber")

	l.entries[0].done = true
	l.sort()

	want := []string{"Ash Lumber", "Elm Lumber", "Maple Lumber"}
	for i, w := range want {
		if l.entries[i].item != w {
			t.Errorf("entries[%d] = %q, want %q", i, l.entries[i].item, w)
		}
	}
	if got := l.progress(); got < 0.33 || got > 0.34 {
		t.Errorf("progress = %v, want 1/3", got)
	}

	// A finished task no longer blocks adding it again.
	if !l.add("Carpenter", "Maple Lumber") {
		t.Error("re-adding a finished task failed")
	}
}

func TestCraftListRemove(t *testing.T) {
	var l craftList
	l.add("Culinarian", "Rolanberry Pie")
	l.remove(5)
	l.remove(0)
	if l.len() != 0 {
		t.Errorf("len = %d, want 0", l.len())
	}
	if l.progress() != 0 {
		t.Error("empty list progress should be 0")
	}
}

func TestFilterMatch(t *testing.T) {
	open, done := entry{item: "a"}, entry{item: "b", done: true}
	tests := []struct {
		f          filter
		open, done bool
	}{
		{showAll, true, true},
		{showOpen, true, false},
		{showDone, false, true},
	}
	for _, tt := range tests {
		if got := tt.f.match(open); got != tt.open {
			t.Errorf("%s match(open) = %v", filterNames[tt.f], got)
		}
		if got := tt.f.match(done); got != tt.done {
			t.Errorf("%s match(done) = %v", filterNames[tt.f], got)
		}
	}
	if len(filterNames) != int(showDone)+1 {
		t.Error("filter names out of sync")
	}
}
