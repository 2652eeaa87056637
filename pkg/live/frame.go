package live

// FrameType discriminates wire frames.
type FrameType string

const (
	// FrameSnapshot carries the full HTML of the container. Sent once per
	// subscriber, on connect.
	FrameSnapshot FrameType = "snapshot"

	// FramePatch carries the mutations applied since the previous flush.
	FramePatch FrameType = "patch"

	// FrameEvent carries a client event to the server.
	FrameEvent FrameType = "event"
)

// Frame is the wire envelope. Seq increases by one per patch frame so a
// client can detect gaps and request a fresh snapshot.
type Frame struct {
	Type  FrameType `json:"type"`
	Seq   uint64    `json:"seq"`
	HTML  string    `json:"html,omitempty"`
	Ops   []Op      `json:"ops,omitempty"`
	Event *Event    `json:"event,omitempty"`
}

// Op is one mutation applied to the mirrored tree. Nodes are addressed by
// mirror-assigned IDs; inserts carry the serialized subtree so the client
// can materialize nodes it has never seen.
type Op struct {
	Op     string `json:"op"`
	Target uint64 `json:"target"`
	Parent uint64 `json:"parent,omitempty"`
	Index  int    `json:"index,omitempty"`
	Name   string `json:"name,omitempty"`
	Value  string `json:"value,omitempty"`
	HTML   string `json:"html,omitempty"`
}

// Event is a client interaction frame payload.
type Event struct {
	Target uint64 `json:"target"`
	Event  string `json:"event"`
	Value  string `json:"value,omitempty"`
}
