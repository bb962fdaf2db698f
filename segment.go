package textview

import "github.com/rivo/uniseg"

// GraphemeIterator is a lazy, single-pass iterator over the grapheme
// clusters of a text. Like LineIterator, each cluster is a sub-view sharing
// the source's buffer.
type GraphemeIterator struct {
	src Text
	g   *uniseg.Graphemes
	cur Text
}

// Graphemes returns an iterator over the text's grapheme clusters
// (user-perceived characters), as segmented by Unicode Standard Annex #29.
func (t Text) Graphemes() *GraphemeIterator {
	return &GraphemeIterator{src: t, g: uniseg.NewGraphemes(t.String())}
}

// Next advances to the next grapheme cluster. It returns false when
// iteration is complete.
func (it *GraphemeIterator) Next() bool {
	if !it.g.Next() {
		return false
	}
	from, to := it.g.Positions()
	cur, ok := it.src.reattach(it.src.viewBytes()[from:to])
	if !ok {
		return false
	}
	it.cur = cur
	return true
}

// Text returns the current grapheme cluster.
func (it *GraphemeIterator) Text() Text {
	return it.cur
}

// Width returns the monospace display width of the visible text in cells,
// as defined by Unicode East Asian Width plus the usual emoji and
// zero-width rules.
func (t Text) Width() int {
	return uniseg.StringWidth(t.String())
}
