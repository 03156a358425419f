// Package generate drives the synthesis pipeline end to end: it repeatedly
// asks the search for a node-type sequence, assembles it into a concrete
// graph (Sample mode), fingerprints the result, and keeps it only when the
// fingerprint has not been produced before, until the requested number of
// unique graphs is collected.
//
// The loop is bounded: once the attempt ceiling is exhausted it fails with
// an ExhaustedError carrying the count actually produced, never silently
// truncating and never looping forever. Search exhaustion is routine and
// retried transparently; internal-consistency errors (argument-binding
// violations, library validation failures) abort immediately because they
// indicate a programming defect, not bad luck.
//
// Every attempt derives an independent RNG stream from the caller's seed,
// so a fixed seed reproduces the exact set of emitted graphs.
package generate
