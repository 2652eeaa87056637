// Package vdom provides the tree model: immutable descriptions of desired UI
// produced by component functions.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments and components. Props on elements are a list of tagged Prop
// values whose kind (attribute, listener, style, ref) is decided when the
// node is constructed, never inferred later from naming conventions.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// Trees are plain data. The reconcile package diffs successive trees and
// applies the minimal mutation set to a dom.Document; the render package
// serializes a tree to HTML using the same attribute rules.
package vdom
