// Package live mirrors a host tree over WebSocket.
//
// A Mirror owns an in-memory document and records every mutation the
// reconciler applies to it. Flush packages the buffered mutations into a
// sequenced frame and broadcasts it to all connected subscribers; a fresh
// subscriber first receives a full HTML snapshot so it can join
// mid-session. Client events travel the other way and are handed to the
// application's dispatch hook.
//
// The package deliberately carries no session, routing, or auth surface.
package live
