package app

import (
	"testing"
	"time"
)

func TestCountdownDeliversEveryTickThenCloses(t *testing.T) {
	ticks := make(chan time.Time)
	cd := newCountdown(3, ticks)

	var got []int
	done := make(chan struct{})
	go func() {
		defer close(done)
		for value := range cd.C {
			got = append(got, value)
		}
	}()

	for i := 0; i < 3; i++ {
		ticks <- time.Time{}
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("countdown did not finish after enough ticks")
	}

	if len(got) != 3 || got[0] != 2 || got[1] != 1 || got[2] != 0 {
		t.Fatalf("expected 2,1,0 got %v", got)
	}

	zeros := 0
	for _, value := range got {
		if value == 0 {
			zeros++
		}
	}
	if zeros != 1 {
		t.Fatalf("zero must be delivered exactly once, got %d", zeros)
	}
}

func TestCountdownStopIsIdempotent(t *testing.T) {
	ticks := make(chan time.Time)
	cd := newCountdown(10, ticks)

	cd.Stop()
	cd.Stop()

	select {
	case _, ok := <-cd.C:
		if ok {
			t.Fatal("no value expected after stop")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("countdown channel did not close after stop")
	}
}

func TestCountdownWithNoTimeClosesImmediately(t *testing.T) {
	cd := newCountdown(0, nil)

	select {
	case _, ok := <-cd.C:
		if ok {
			t.Fatal("no value expected from an empty countdown")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("empty countdown did not close")
	}
}
