// Package reconcile converts tree model nodes into host tree mutations,
// diffing successive trees against the committed one so the applied patch
// is minimal.
//
// A Reconciler owns the committed tree and the mounted-record graph for
// every container it has rendered into. Mounted records live in an arena
// and refer to each other by index; the host tree's nodes are only ever
// touched through the dom package interfaces.
//
// Components are transparent: diffing re-invokes the component with its
// new props and diffs the rendered output, while the component's reactive
// scope (its effects and cleanups) persists across updates and is disposed
// exactly once, at unmount.
package reconcile
