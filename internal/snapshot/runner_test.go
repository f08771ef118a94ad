package snapshot

import (
	"context"
	"testing"
	"time"
)

func TestWatch_EmitsSerially(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := &fakeClient{}
	out := make(chan Result)
	go Watch(ctx, f, time.Millisecond, out)

	for i := 0; i < 2; i++ {
		select {
		case res := <-out:
			if res.Err != nil {
				t.Fatalf("cycle %d err=%v", i, res.Err)
			}
			if res.Snap == nil {
				t.Fatalf("cycle %d: nil snapshot", i)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for watch cycle")
		}
	}

	if n := f.callCount(); n < 2*len(wantSequence) {
		t.Fatalf("expected at least two full cycles, got %d calls", n)
	}
}

func TestWatch_FailedCycleCarriesError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := &fakeClient{failAtCall: 1}
	out := make(chan Result)
	go Watch(ctx, f, time.Millisecond, out)

	select {
	case res := <-out:
		if res.Err == nil {
			t.Fatal("expected error result")
		}
		if res.Snap != nil {
			t.Fatal("failed cycle must not carry a snapshot")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for watch cycle")
	}
}
