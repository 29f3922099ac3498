// Package scaffold generates the per-day files of a puzzle project: a
// solution stub, a test stub and empty input/example placeholders. It powers
// the "aocgen generate-day" command. Every artifact goes through the same
// exists/force decision, so running the generator twice never clobbers work
// unless forced, and an I/O failure on one artifact never stops the others.
package scaffold
