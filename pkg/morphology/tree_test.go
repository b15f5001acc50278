package morphology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisTreeShape(t *testing.T) {
	root := AnalysisTree()

	require.Equal(t, "prefixed_analytical_word", root.Tool.Name)
	require.Len(t, root.Children, 2)
	assert.Nil(t, root.Children[0], "the analytical prefix has no follow-up")

	pronoun := root.Children[1]
	require.NotNil(t, pronoun)
	require.Equal(t, "suffixed_pronoun", pronoun.Tool.Name)
	require.Len(t, pronoun.Children, 2)

	stem := pronoun.Children[0]
	require.NotNil(t, stem)
	require.Equal(t, "complete_form", stem.Tool.Name)
	require.Len(t, stem.Children, 1)

	morphemes := stem.Children[0]
	require.NotNil(t, morphemes)
	require.Equal(t, "prefixed_suffixed_morpheme", morphemes.Tool.Name)
	require.Len(t, morphemes.Children, 3)
	for _, child := range morphemes.Children {
		require.NotNil(t, child)
		assert.Equal(t, "morpheme_type", child.Tool.Name)
		assert.Empty(t, child.Children)
	}

	suffix := pronoun.Children[1]
	require.NotNil(t, suffix)
	assert.Equal(t, "complete_form", suffix.Tool.Name)
	assert.Empty(t, suffix.Children)
}

func TestAnalysisTreeNewInstances(t *testing.T) {
	root := AnalysisTree()

	first := root.New()
	second := root.New()
	assert.NotSame(t, first, second, "every descent needs a fresh analysis value")
}
