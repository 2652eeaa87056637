package reactive

import "testing"

func TestBatchNotifiesOnce(t *testing.T) {
	rt := NewRuntime(nil)
	first := NewSignal(rt, "a")
	last := NewSignal(rt, "b")
	listener := newTestListener()

	rt.WithListener(listener, func() {
		_ = first.Get()
		_ = last.Get()
	})

	Batch(rt, func() {
		first.Set("x")
		last.Set("y")
	})

	if listener.getDirtyCount() != 1 {
		t.Errorf("expected one batched notification, got %d", listener.getDirtyCount())
	}
}

func TestNestedBatches(t *testing.T) {
	rt := NewRuntime(nil)
	sig := NewSignal(rt, 0)
	listener := newTestListener()

	rt.WithListener(listener, func() {
		_ = sig.Get()
	})

	Batch(rt, func() {
		sig.Set(1)
		Batch(rt, func() {
			sig.Set(2)
		})
		if listener.getDirtyCount() != 0 {
			t.Error("notifications must wait for the outermost batch")
		}
	})

	if listener.getDirtyCount() != 1 {
		t.Errorf("expected one notification after the outer batch, got %d", listener.getDirtyCount())
	}
}

func TestBatchedWritesRunEffectOnce(t *testing.T) {
	rt := NewRuntime(nil)
	a := NewSignal(rt, 0)
	b := NewSignal(rt, 0)
	runs := 0

	NewEffect(rt, func() Cleanup {
		_ = a.Get()
		_ = b.Get()
		runs++
		return nil
	})

	Batch(rt, func() {
		a.Set(1)
		b.Set(2)
	})
	rt.RunPendingEffects()

	if runs != 2 {
		t.Errorf("expected one re-run after the batch, got %d total runs", runs)
	}
}

func TestUntracked(t *testing.T) {
	rt := NewRuntime(nil)
	tracked := NewSignal(rt, 0)
	ignored := NewSignal(rt, 0)
	runs := 0

	NewEffect(rt, func() Cleanup {
		_ = tracked.Get()
		Untracked(rt, func() {
			_ = ignored.Get()
		})
		runs++
		return nil
	})

	ignored.Set(1)
	rt.RunPendingEffects()
	if runs != 1 {
		t.Errorf("untracked read must not subscribe, got %d runs", runs)
	}

	tracked.Set(1)
	rt.RunPendingEffects()
	if runs != 2 {
		t.Errorf("expected re-run from tracked write, got %d runs", runs)
	}
}
