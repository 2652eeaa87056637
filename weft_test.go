package weft

import (
	"context"
	"testing"
	"time"
)

func TestCounterScenario(t *testing.T) {
	app := NewApp(Config{})
	defer app.Close()

	count := NewSignal(app.Runtime, 0)
	view := Define("Counter", func(Props, []*VNode) *VNode {
		return Span(Textf("%d", count.Get()))
	})

	app.Mount(Comp(view, nil))

	container := app.Mirror.Container()
	if len(container.Children()) != 1 {
		t.Fatalf("expected mounted span, got %d nodes", len(container.Children()))
	}
	span := container.Children()[0]
	textNode := span.Children()[0]
	if textNode.Text() != "0" {
		t.Fatalf("expected initial text 0, got %q", textNode.Text())
	}

	count.Set(1)
	app.Scheduler.Flush()

	if container.Children()[0] != span || span.Children()[0] != textNode {
		t.Error("update must reuse the mounted nodes, not replace them")
	}
	if textNode.Text() != "1" {
		t.Errorf("expected text 1 after drain, got %q", textNode.Text())
	}
}

func TestClickDrivenUpdate(t *testing.T) {
	app := NewApp(Config{})
	defer app.Close()

	count := NewSignal(app.Runtime, 0)
	view := Define("Clicker", func(Props, []*VNode) *VNode {
		return Button(
			OnClick(func(Event) { count.Update(func(n int) int { return n + 1 }) }),
			Textf("clicked %d", count.Get()),
		)
	})

	app.Mount(Comp(view, nil))
	button := app.Mirror.Container().Children()[0]

	button.Dispatch(Event{Type: "click"})
	app.Scheduler.Flush()

	if got := button.Children()[0].Text(); got != "clicked 1" {
		t.Errorf("expected clicked 1, got %q", got)
	}
}

func TestMirrorReceivesFlushedPatches(t *testing.T) {
	app := NewApp(Config{})
	defer app.Close()

	toggle := NewSignal(app.Runtime, false)
	view := Define("Toggle", func(Props, []*VNode) *VNode {
		return Div(IfElse(toggle.Get(), Span(Text("on")), Span(Text("off"))))
	})

	app.Mount(Comp(view, nil))
	app.Scheduler.Flush() // initial paint flushes the mount mutations

	if app.Mirror.Pending() != 0 {
		t.Fatalf("expected mount mutations flushed, %d pending", app.Mirror.Pending())
	}

	toggle.Set(true)
	app.Scheduler.Flush()

	if app.Mirror.Pending() != 0 {
		t.Errorf("expected update mutations flushed, %d pending", app.Mirror.Pending())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	app := NewApp(Config{})
	defer app.Close()

	done := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		app.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
