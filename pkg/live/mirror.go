package live

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/weft-ui/weft/pkg/dom"
	"github.com/weft-ui/weft/pkg/render"
)

// Config configures a Mirror.
type Config struct {
	// Logger receives subscriber lifecycle and encoding failures.
	// Defaults to slog.Default.
	Logger *slog.Logger

	// CheckOrigin overrides the WebSocket origin check. Nil keeps the
	// upgrader's same-origin default.
	CheckOrigin func(origin string) bool

	// OnEvent receives client events. It is called from a connection's
	// read goroutine; marshal onto the runtime loop before touching nodes.
	OnEvent func(target dom.Node, ev dom.Event)
}

// Mirror owns the mirrored document and the subscriber set.
type Mirror struct {
	doc       *dom.Memory
	container dom.Node
	log       *slog.Logger
	tracer    trace.Tracer
	onEvent   func(dom.Node, dom.Event)

	mu      sync.Mutex
	ids     map[dom.Node]uint64
	byID    map[uint64]dom.Node
	nextID  uint64
	pending []Op
	seq     uint64
	subs    map[*subscriber]struct{}

	checkOrigin func(string) bool
}

// New creates a mirror with its own document and container.
func New(cfg Config) *Mirror {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	m := &Mirror{
		doc:         dom.NewMemory(),
		log:         log,
		tracer:      otel.Tracer("weft/live"),
		onEvent:     cfg.OnEvent,
		ids:         make(map[dom.Node]uint64),
		byID:        make(map[uint64]dom.Node),
		subs:        make(map[*subscriber]struct{}),
		checkOrigin: cfg.CheckOrigin,
	}
	m.container = m.doc.CreateElement("main")
	m.doc.Observe(m.record)
	return m
}

// Document returns the mirrored document. Render into Container through
// the reconciler; direct writes are mirrored all the same.
func (m *Mirror) Document() *dom.Memory { return m.doc }

// Container returns the root node subscribers see.
func (m *Mirror) Container() dom.Node { return m.container }

// record converts an observed mutation into a wire op and buffers it.
func (m *Mirror) record(mut dom.Mutation) {
	m.mu.Lock()
	defer m.mu.Unlock()

	op := Op{
		Op:     mut.Op.String(),
		Target: m.idFor(mut.Target),
		Name:   mut.Name,
		Value:  mut.Value,
	}
	if mut.Parent != nil {
		op.Parent = m.idFor(mut.Parent)
		op.Index = mut.Index
	}
	if mut.Op == dom.OpInsert {
		html, err := render.NodeToString(mut.Target)
		if err != nil {
			m.log.Error("subtree serialization failed", "error", err)
		}
		op.HTML = html
	}
	if mut.Op == dom.OpRemove {
		m.forget(mut.Target)
	}

	m.pending = append(m.pending, op)
}

// idFor assigns or returns the wire ID for a node. Caller holds mu.
func (m *Mirror) idFor(n dom.Node) uint64 {
	if id, ok := m.ids[n]; ok {
		return id
	}
	m.nextID++
	m.ids[n] = m.nextID
	m.byID[m.nextID] = n
	return m.nextID
}

// forget drops a detached subtree's IDs. Caller holds mu.
func (m *Mirror) forget(n dom.Node) {
	if id, ok := m.ids[n]; ok {
		delete(m.ids, n)
		delete(m.byID, id)
	}
	for _, c := range n.Children() {
		m.forget(c)
	}
}

// NodeByID resolves a wire ID back to its node, for event dispatch.
func (m *Mirror) NodeByID(id uint64) (dom.Node, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.byID[id]
	return n, ok
}

// Flush broadcasts the mutations buffered since the previous flush. A
// flush with no pending mutations sends nothing.
func (m *Mirror) Flush(ctx context.Context) {
	m.mu.Lock()
	ops := m.pending
	m.pending = nil
	if len(ops) == 0 {
		m.mu.Unlock()
		return
	}
	m.seq++
	frame := Frame{Type: FramePatch, Seq: m.seq, Ops: ops}
	subs := make([]*subscriber, 0, len(m.subs))
	for s := range m.subs {
		subs = append(subs, s)
	}
	m.mu.Unlock()

	_, span := m.tracer.Start(ctx, "live.flush",
		trace.WithAttributes(
			attribute.Int("ops", len(ops)),
			attribute.Int("subscribers", len(subs)),
		))
	defer span.End()

	for _, s := range subs {
		s.send(frame)
	}
}

// Pending reports how many mutations await the next flush.
func (m *Mirror) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// snapshot builds the connect-time frame under the current sequence.
func (m *Mirror) snapshot() (Frame, error) {
	html, err := render.NodeToString(m.container)
	if err != nil {
		return Frame{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return Frame{Type: FrameSnapshot, Seq: m.seq, HTML: html}, nil
}
