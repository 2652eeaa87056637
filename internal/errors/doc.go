// Package errors provides structured, coded errors for the weft runtime.
//
// Every error carries a short code (e.g. "W101"), a category, a message,
// and optionally a suggestion and a wrapped cause. Codes are registered in
// registry.go so that the same failure is reported identically everywhere.
package errors
