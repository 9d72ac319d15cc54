package mdast

// Reconstruct concatenates every token/text field of doc's tree, in
// source order, back into a plain string: the losslessness invariant. For
// any source that parsed successfully with no trailing tape,
// Reconstruct(doc) must equal the original source exactly.
func Reconstruct(doc *Document) string {
	return doc.Tokens().String()
}
