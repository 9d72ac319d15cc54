package mdast

import "github.com/shurcooL/sanitized_anchor_name"

// Slug returns the heading's identifier: the explicit {id} text if one
// was parsed, otherwise sanitized_anchor_name.Create over the heading's
// plain rendered text, the auto-slugging behavior blackfriday's
// HeadingIDs extension provides.
func (n Heading) Slug() string {
	if n.ID != nil {
		return n.ID.Text.String()
	}
	return sanitized_anchor_name.Create(plainText(n.Content))
}

// plainText walks inline content collecting only human-readable text,
// skipping delimiter tokens, for use as slug input.
func plainText(is Inlines) string {
	var out string
	for _, n := range is {
		switch v := n.(type) {
		case PlainText:
			out += v.Text.String()
		case Raw:
			out += v.Text.String()
		case Emphasis:
			out += plainText(v.Content)
		case Highlight:
			out += plainText(v.Content)
		case Strikethrough:
			out += plainText(v.Content)
		case Sub:
			out += plainText(v.Content)
		case Sup:
			out += plainText(v.Content)
		case InlineCode:
			out += v.Content.String()
		case Link:
			out += plainText(v.Text.Content)
		case Image:
			out += plainText(v.Link.Text.Content)
		}
	}
	return out
}
