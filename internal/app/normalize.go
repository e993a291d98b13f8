package app

import "strings"

// edgeCutset is the punctuation stripped from both ends of a candidate answer.
const edgeCutset = " .,!?:;—-\"'«»"

// Normalize reduces a free-text answer to its canonical comparable form:
// lowercased, truncated at the earliest '.' or '(' (whichever comes first),
// stripped of edge punctuation, with every 'ё' folded to 'е'. Pure and
// idempotent; the result may be empty and an empty result never matches.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))

	if i := strings.IndexAny(text, ".("); i >= 0 {
		text = text[:i]
	}

	core := strings.Trim(strings.TrimSpace(text), edgeCutset)
	return strings.ReplaceAll(core, "ё", "е")
}
