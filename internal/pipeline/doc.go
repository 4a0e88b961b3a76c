// Package pipeline runs border extraction over the parts of a model with a
// pool of workers and hands the per-part results back in part order, so the
// output never depends on the thread count.
//
// A failed part is a Result with Err set; it never stops its siblings.
package pipeline
