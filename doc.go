/*
Package ordset provides an in-memory ordered key set.

Sets are backed by a classical B-tree (package btree of this module) with a
configurable minimum degree. Keys are the only payload; inserting a key
equal to a stored one overwrites it silently. Search, Insert and Delete all
run in O(t · log_t n) comparisons.

A set created by

	var s ordset.Set[int]

is a valid object and behaves like the empty set, using the default degree.
Use New with the Degree option to pick a different node shape.

Sets are not safe for concurrent use; callers must serialize access.

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package ordset

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SetError is an error type for the ordset module
type SetError string

func (e SetError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SetError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
