// Package script emits the indentation demo program's output.
//
// The demo is the runnable twin of the indent fixture: a greeting, a counted
// loop with parity labels, an inert nested literal and two closing lines. It
// takes no input, reads no environment, and always succeeds, so its output
// can be diffed byte-for-byte across runs.
package script
