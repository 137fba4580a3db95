package tagkey

// stopWords holds German and English articles, prepositions, and conjunctions
// in folded form (matching runs after Fold, so "für" is listed as "fuer").
var stopWords = map[string]struct{}{
	// German articles
	"der": {}, "die": {}, "das": {}, "den": {}, "dem": {}, "des": {},
	"ein": {}, "eine": {}, "einem": {}, "einen": {}, "einer": {}, "eines": {},
	// German prepositions
	"an": {}, "am": {}, "auf": {}, "aus": {}, "bei": {}, "beim": {},
	"durch": {}, "fuer": {}, "gegen": {}, "im": {}, "in": {}, "ins": {},
	"mit": {}, "nach": {}, "ohne": {}, "ueber": {}, "um": {}, "unter": {},
	"von": {}, "vom": {}, "vor": {}, "zu": {}, "zum": {}, "zur": {},
	// German conjunctions
	"und": {}, "oder": {}, "aber": {}, "als": {}, "auch": {}, "bzw": {},
	"sowie": {}, "wie": {},
	// English articles and conjunctions
	"a": {}, "the": {}, "and": {}, "or": {}, "but": {},
	// English prepositions
	"at": {}, "by": {}, "for": {}, "from": {}, "into": {}, "of": {},
	"on": {}, "to": {}, "via": {}, "with": {},
}
