// Package dom defines the host tree the reconciler mutates: a minimal
// document/node surface with attributes, inline styles, text content and
// event listeners, plus an in-memory implementation used by the server
// runtime and by tests.
package dom
