package model

import "testing"

func TestHistoryStagnant(t *testing.T) {
	var h History
	h.Record("a")
	h.Record("b")
	if h.Stagnant("a") {
		t.Fatal("history with fewer than three entries reported stagnation")
	}

	h.Record("c")
	if !h.Stagnant("a") {
		t.Fatal("repeat of three generations ago not detected")
	}
	if h.Stagnant("d") {
		t.Fatal("new hash reported as stagnant")
	}

	h.Record("d")
	if h.Stagnant("a") {
		t.Fatal("hash older than three generations reported as stagnant")
	}
}

func TestHistoryKeepsFiveEntries(t *testing.T) {
	var h History
	for _, hash := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		h.Record(hash)
	}
	if len(h.hashes) != historySize {
		t.Fatalf("history holds %d entries, expected %d", len(h.hashes), historySize)
	}
	if h.hashes[0] != "3" {
		t.Fatalf("oldest entry %q, expected %q", h.hashes[0], "3")
	}

	h.Reset()
	if h.Stagnant("7") {
		t.Fatal("reset history reported stagnation")
	}
}

func TestHistoryDetectsBlinker(t *testing.T) {
	w := worldFrom(t,
		".....",
		".....",
		".###.",
		".....",
		".....",
	)
	var h History
	for range 3 {
		h.Record(w.Hash())
		w.Advance()
	}
	if !h.Stagnant(w.Hash()) {
		t.Fatal("period two oscillator not reported as stagnant")
	}
}
