// Package tagkey derives canonical matching keys from tag and topic labels.
//
// LLM generations phrase the same concept differently from run to run
// ("Minimierung (Quine-McCluskey)" vs "Quine-McCluskey Minimierung"). Canonical
// keys collapse those variants: labels are lowercased, parenthesized content is
// expanded into token material, separators become token boundaries, German
// umlauts fold to ASCII digraphs, stop words drop out, and the remaining tokens
// are sorted. Two labels with the same key are treated as the same concept.
//
// Every function in this package is pure; the stages Fold, Tokenize, and
// FilterStopWords are exported so each step can be tested on its own.
package tagkey
