package core

import (
	"testing"
	"time"
)

func TestSetRateFloorsAtOne(t *testing.T) {
	p := NewPacer(0)
	if p.Step() != time.Second {
		t.Fatalf("step=%v for rate 0, want 1s", p.Step())
	}
	p.SetRate(-5)
	if p.Step() != time.Second {
		t.Fatalf("step=%v for negative rate, want 1s", p.Step())
	}
	p.SetRate(50)
	if p.Step() != time.Second/50 {
		t.Fatalf("step=%v for rate 50, want %v", p.Step(), time.Second/50)
	}
}

func TestResetDropsBacklog(t *testing.T) {
	p := NewPacer(50)
	p.ShouldTick()
	time.Sleep(80 * time.Millisecond)

	p.Reset()

	if !p.ShouldTick() {
		t.Fatal("the first tick after Reset must fire immediately")
	}
	if p.ShouldTick() {
		t.Fatal("Reset must discard time accumulated before it")
	}
}

func TestFirstTickIsImmediate(t *testing.T) {
	p := NewPacer(1)
	if !p.ShouldTick() {
		t.Fatal("a fresh pacer must allow the first tick immediately")
	}
	if p.ShouldTick() {
		t.Fatal("a second tick at 1/s must not fire right away")
	}
}
