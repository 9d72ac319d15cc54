package mdscope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tapedown/tapedown/mdscope"
)

func TestActiveTerminatorsIsInnermostOnly(t *testing.T) {
	var env mdscope.Env
	env = env.Push(mdscope.Scope{Kind: mdscope.LinkInSquareBrackets})
	env = env.Push(mdscope.Scope{Kind: mdscope.EmphasisSingle, Delim: "*"})

	assert.Equal(t, []string{"*"}, env.ActiveTerminators(), "only the innermost scope's terminators are active")
}

func TestPushDoesNotMutateParent(t *testing.T) {
	var base mdscope.Env
	base = base.Push(mdscope.Scope{Kind: mdscope.String})
	child := base.Push(mdscope.Scope{Kind: mdscope.Sub})

	assert.Equal(t, 1, base.Depth())
	assert.Equal(t, 2, child.Depth())
}

func TestEmphasisDelimiterWidths(t *testing.T) {
	assert.Equal(t, []string{"*"}, mdscope.Scope{Kind: mdscope.EmphasisSingle, Delim: "*"}.Terminators())
	assert.Equal(t, []string{"**"}, mdscope.Scope{Kind: mdscope.EmphasisDouble, Delim: "*"}.Terminators())
	assert.Equal(t, []string{"***"}, mdscope.Scope{Kind: mdscope.EmphasisTriple, Delim: "*"}.Terminators())
}

func TestTopLevelHasNoActiveTerminators(t *testing.T) {
	var env mdscope.Env
	assert.Empty(t, env.ActiveTerminators())
	_, ok := env.Innermost()
	assert.False(t, ok)
}
