package pipeline

import "textpipe/internal/textutil"

// TransformedLines holds the retained, upper-cased lines of a Document in
// source order.
type TransformedLines []string

// FilterAndUppercase drops blank lines and upper-cases the rest. Retained
// lines keep their surrounding whitespace.
func FilterAndUppercase(doc Document) TransformedLines {
	out := make(TransformedLines, 0, len(doc.lines))
	for _, line := range doc.lines {
		if textutil.IsBlank(line) {
			continue
		}
		out = append(out, textutil.Upper(line))
	}
	return out
}

// Lines returns the transformed lines as a plain slice.
func (t TransformedLines) Lines() []string {
	return []string(t)
}
