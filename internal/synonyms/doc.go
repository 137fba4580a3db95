// Package synonyms decides whether two canonical tag keys denote the same
// concept when the keys themselves differ.
//
// Resolution cascades: exact key equality, then a static group table of known
// alternate spellings (e.g. "quinemccluskey" vs "qmc"), then a token-overlap
// heuristic. The group table is configuration, not code: a TOML document with
// a built-in default shipped in the package, replaceable via the config file
// so domain coverage can grow without a rebuild.
package synonyms
