package mdast_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tapedown/tapedown/mdast"
	"github.com/tapedown/tapedown/tape"
)

func tp(s string) tape.Tape { return tape.New(s) }

func TestReconstructParagraph(t *testing.T) {
	doc := &mdast.Document{
		Blocks: []mdast.Block{
			mdast.Paragraph{Content: mdast.Inlines{
				mdast.PlainText{Text: tp("hello ")},
				mdast.Emphasis{OpenDelim: tp("*"), Content: mdast.Inlines{mdast.PlainText{Text: tp("world")}}, CloseDelim: tp("*")},
			}},
		},
	}
	assert.Equal(t, "hello *world*", mdast.Reconstruct(doc))
}

func TestReconstructLinkWithTitle(t *testing.T) {
	title := tp("a title")
	link := mdast.Link{
		Text:        mdast.InSquareBrackets[mdast.Inlines]{Open: tp("["), Content: mdast.Inlines{mdast.PlainText{Text: tp("go")}}, Close: tp("]")},
		OpenParen:   tp("("),
		Destination: tp("https://go.dev"),
		Title:       &mdast.InDoubleQuotes[tape.Tape]{Open: tp(`"`), Content: title, Close: tp(`"`)},
		CloseParen:  tp(")"),
	}
	doc := &mdast.Document{Blocks: []mdast.Block{mdast.Paragraph{Content: mdast.Inlines{link}}}}
	assert.Equal(t, `[go](https://go.dev "a title")`, mdast.Reconstruct(doc))
}

func TestHeadingSlugFromContentWhenNoExplicitID(t *testing.T) {
	h := mdast.Heading{
		Hashes:  tp("##"),
		Content: mdast.Inlines{mdast.PlainText{Text: tp("Hello World")}},
	}
	assert.Equal(t, "hello-world", h.Slug())
}

func TestHeadingSlugPrefersExplicitID(t *testing.T) {
	h := mdast.Heading{
		Hashes:  tp("#"),
		Content: mdast.Inlines{mdast.PlainText{Text: tp("Title")}},
		ID:      &mdast.HeadingID{Open: tp("{"), Text: tp("custom-id"), Close: tp("}")},
	}
	assert.Equal(t, "custom-id", h.Slug())
}

func TestTaskListItemChecked(t *testing.T) {
	checked := mdast.TaskListItem{Header: mdast.InSquareBrackets[tape.Tape]{Content: tp("x")}}
	unchecked := mdast.TaskListItem{Header: mdast.InSquareBrackets[tape.Tape]{Content: tp(" ")}}
	assert.True(t, checked.Checked())
	assert.False(t, unchecked.Checked())
}

func TestFormatTerseVsVerbose(t *testing.T) {
	n := mdast.PlainText{Text: tp("hi")}
	assert.Equal(t, "PlainText", fmt.Sprintf("%v", n))
	assert.Equal(t, `PlainText{"hi"}`, fmt.Sprintf("%+v", n))
}
