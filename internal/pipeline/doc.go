// Package pipeline implements the text pipeline: load a document, tokenize or
// split it into lines, aggregate or transform it, and persist the result.
//
// The transformations are pure. Load reads a file once and returns an
// immutable Document; CountWords and FilterAndUppercase consume that Document
// directly and never touch the filesystem. Save is the only other operation
// with side effects: it creates the destination's parent directory (unless
// told not to) and overwrites the destination in place.
//
// Every filesystem failure surfaces as an *IOError carrying the operation, the
// path, and the underlying cause. There is no retry and no partial result.
// The package does not log; callers decide how failures are reported.
package pipeline
