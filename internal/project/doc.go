// Package project reads and writes the per-project aocgen.yaml file. It plays
// the part a build tool's project model would: it names the namespace prefix,
// the target language and the source, test and resource directories the
// generator writes into.
package project
