package s52

import (
	"github.com/beetlebugorg/s52/internal/symbology"
)

// ObjectClassAcronym resolves a numeric S-57 OBJL object label to its
// six-character acronym, e.g. 17 to "BOYLAT". The second return is false
// for codes outside the Edition 3.1 object catalogue.
func ObjectClassAcronym(code int) (string, bool) {
	return symbology.ObjectClassAcronym(code)
}

// ObjectClassCode resolves an object class acronym to its numeric OBJL
// label, e.g. "BOYLAT" to 17. The second return is false for acronyms
// outside the Edition 3.1 object catalogue.
func ObjectClassCode(acronym string) (int, bool) {
	return symbology.ObjectClassCode(acronym)
}
