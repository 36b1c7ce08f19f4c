// Package array provides generic slice helpers.
//
// RemoveItemFromList extracts the elements matching a predicate and rewrites the
// slice in place; Partition is the non-mutating counterpart. AllSettled runs a set of
// tasks concurrently and reports every success and failure.
package array
