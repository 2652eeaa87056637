// Package render serializes trees to HTML strings.
//
// The renderer is a pure string walk with no reactive tracking: components
// are invoked once and their output serialized. Attribute handling
// (void-tag set, boolean-attribute rule, quoting) follows the same rules
// the reconciler applies to live nodes, so server-rendered markup matches
// what a client-side mount would have produced.
package render
