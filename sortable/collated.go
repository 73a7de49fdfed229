package sortable

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collated is a sortable string ordered by a locale-aware collator, so that
// e.g. "ä" sorts next to "a" under German rules instead of after "z".
// Equality is plain string equality; only the ordering is collated.
//
// Build values through a Collation so they share one collator:
//
//	de := sortable.NewCollation(language.German)
//	c := container.Of(de.Value("Äpfel"), de.Value("Zucker"), de.Value("Apfel"))
//
// The zero value falls back to byte-wise ordering.
type Collated struct {
	Text string

	coll *collate.Collator
}

// Compile-time check that Collated implements Sortable[Collated].
var _ Sortable[Collated] = (*Collated)(nil)

// Equals returns true if both values hold the same text.
// The collator does not participate in equality.
func (c Collated) Equals(other Collated) bool {
	return c.Text == other.Text
}

// LessThan returns true if this text sorts before the other under the
// collator. Either side's collator is used; with none set, byte order applies.
func (c Collated) LessThan(other Collated) bool {
	coll := c.coll
	if coll == nil {
		coll = other.coll
	}

	if coll == nil {
		return c.Text < other.Text
	}

	return coll.CompareString(c.Text, other.Text) < 0
}

// String returns the underlying text.
func (c Collated) String() string {
	return c.Text
}

// Collation produces Collated values that share a single collator.
type Collation struct {
	coll *collate.Collator
}

// NewCollation creates a Collation for the given language tag.
func NewCollation(tag language.Tag, opts ...collate.Option) Collation {
	return Collation{coll: collate.New(tag, opts...)}
}

// Value wraps text so it orders according to this collation.
func (c Collation) Value(text string) Collated {
	return Collated{Text: text, coll: c.coll}
}
