// Package interpreter implements the content interpretation API: a fixed
// registry of template-based formatting operations keyed by content type
// (text, code, creative), two heuristic classifiers (programming language
// and content type), and the HTTP handlers that expose them.
//
// The registry is built once at startup and never mutated. Every operation
// is a pure function of its input and options, so handlers share no
// mutable state and need no synchronization.
package interpreter
