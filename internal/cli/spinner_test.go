package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a buffer shared with the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDrawsMessage(t *testing.T) {
	var out syncBuffer
	s := newSpinner(context.Background(), &out, "Checking cases")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(out.String(), "Checking cases") {
		t.Errorf("spinner output missing message: %q", out.String())
	}
	if !strings.HasSuffix(out.String(), "\r") {
		t.Error("spinner should clear its line on stop")
	}
}

func TestSpinnerStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	s := newSpinner(ctx, &syncBuffer{}, "Checking cases")
	s.Start()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner still running after its context expired")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), &syncBuffer{}, "Checking cases")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerSetMessage(t *testing.T) {
	s := newSpinner(context.Background(), &syncBuffer{}, "Checking")
	s.Start()
	s.SetMessage("Checking line 12 of a much longer input")
	s.SetMessage("Done")
	s.Stop()

	if s.width != len("Checking line 12 of a much longer input") {
		t.Errorf("width = %d, want the widest message", s.width)
	}
}

func TestTally(t *testing.T) {
	var tl tally
	tl.add(true, false)
	tl.add(true, false)
	tl.add(false, false)
	if got := tl.String(); got != "2 accepted, 1 rejected" {
		t.Errorf("tally = %q", got)
	}
	tl.add(false, true)
	if got := tl.String(); got != "2 accepted, 1 rejected, 1 failed" {
		t.Errorf("tally = %q", got)
	}
}
