package core

import "testing"

func TestSetNextInvisibleUntilCommit(t *testing.T) {
	b := NewBoard(4)
	b.SetNext(1, 2, 1)
	if b.Get(1, 2) != 0 {
		t.Fatal("SetNext must not affect the current generation before Commit")
	}
	b.Commit()
	if b.Get(1, 2) != 1 {
		t.Fatal("Commit must copy the next buffer into the current one")
	}
}

func TestCommitCarriesUnwrittenCells(t *testing.T) {
	b := NewBoard(4)
	b.SetNext(2, 2, 1)
	b.Commit()
	b.Commit()
	if b.Get(2, 2) != 1 {
		t.Fatal("next buffer must keep values that were never rewritten")
	}
}

func TestCommitCopiesNotAliases(t *testing.T) {
	b := NewBoard(3)
	b.SetNext(1, 1, 1)
	b.Commit()
	b.Set(1, 1, 0)
	b.Commit()
	if b.Get(1, 1) != 1 {
		t.Fatal("Commit must copy, current writes must not leak into next")
	}
}

func TestPopulation(t *testing.T) {
	b := NewBoard(5)
	b.Set(0, 0, 1)
	b.Set(2, 3, 1)
	b.Set(4, 4, 1)
	if got := b.Population(); got != 3 {
		t.Fatalf("population=%d, want 3", got)
	}
	b.Clear()
	if got := b.Population(); got != 0 {
		t.Fatalf("population=%d after Clear, want 0", got)
	}
}
