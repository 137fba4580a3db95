// Package labels picks the best human-readable display form among observed
// variants of a tag. The app is German-first, so labels carrying umlauts score
// above their ASCII transliterations; shorter, cleaner, capitalized forms win
// over parenthesized or hyphen-heavy ones.
package labels
