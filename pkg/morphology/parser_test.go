package morphology

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/syromorph/syromorph/pkg/llm"
)

// scriptedClient replays canned tool arguments per tool name, in order.
type scriptedClient struct {
	replies map[string][]string
}

func (c *scriptedClient) Request(ctx context.Context, transcript *llm.Transcript, tool llm.ToolSpec) (string, error) {
	queue := c.replies[tool.Name]
	if len(queue) == 0 {
		return "", fmt.Errorf("no scripted reply for tool %s", tool.Name)
	}
	c.replies[tool.Name] = queue[1:]
	return queue[0], nil
}

func TestSplitSentences(t *testing.T) {
	tt := map[string]struct {
		content  string
		expected []string
	}{
		"numbered sentences": {
			content:  "1 ܘܡܫܟܚܝܢܢ ܚܢܢ 2 ܡܫܟܚܝܢܢ",
			expected: []string{"ܘܡܫܟܚܝܢܢ ܚܢܢ", "ܡܫܟܚܝܢܢ"},
		},
		"multi digit numbers": {
			content:  "12 ܐ 345 ܒ",
			expected: []string{"ܐ", "ܒ"},
		},
		"no numbers": {
			content:  "  ܘܡܫܟܚܝܢܢ \n",
			expected: []string{"ܘܡܫܟܚܝܢܢ"},
		},
		"empty file": {
			content:  "",
			expected: []string{},
		},
		"only numbers and whitespace": {
			content:  "1 \n 2 \t 3",
			expected: []string{},
		},
	}

	for testName, testCase := range tt {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, testCase.expected, SplitSentences(testCase.content))
		})
	}
}

const parsedWordReport = `Sentence: ܘܡܫܟܚܝܢܢ

Word: ܘܡܫܟܚܝܢܢ
    Prefix: ܘ

    Word: ܡܫܟܚܝܢܢ
        Suffix: ܢܢ

        Word: ܡܫܟܚܝ
            Complete form: ܡܫܟܚܝܢ

            Word: ܡܫܟܚܝܢ
                Prefix: ܡ, Suffix: ܝܢ

                Word: ܡ
                    Morpheme type: preformative

                Word: ܫܟܚ
                    Morpheme type: verbal stem morpheme

                Word: ܝܢ
                    Morpheme type: nominal ending

        Word: ܢܢ
            Complete form: ܚܢܢ

`

func TestParseSentenceFullDescent(t *testing.T) {
	client := &scriptedClient{replies: map[string][]string{
		"list_words":               {`{"words": ["ܘܡܫܟܚܝܢܢ"]}`},
		"prefixed_analytical_word": {`{"prefix": "ܘ"}`},
		"suffixed_pronoun":         {`{"suffix": "ܢܢ"}`},
		"complete_form":            {`{"complete": "ܡܫܟܚܝܢ"}`, `{"complete": "ܚܢܢ"}`},
		"prefixed_suffixed_morpheme": {
			`{"prefix": "ܡ", "suffix": "ܝܢ"}`,
		},
		"morpheme_type": {
			`{"morpheme_type": "preformative"}`,
			`{"morpheme_type": "verbal stem morpheme"}`,
			`{"morpheme_type": "nominal ending"}`,
		},
	}}

	out := &strings.Builder{}
	parser := NewParser(client, out, zap.NewNop())

	err := parser.ParseSentence(context.Background(), "ܘܡܫܟܚܝܢܢ")
	require.NoError(t, err)
	assert.Equal(t, parsedWordReport, out.String())

	for tool, remaining := range client.replies {
		assert.Empty(t, remaining, "every scripted %s reply should be consumed", tool)
	}
}

func TestParseSentenceInvalidWordList(t *testing.T) {
	client := &scriptedClient{replies: map[string][]string{
		"list_words": {`definitely not json`},
	}}

	out := &strings.Builder{}
	parser := NewParser(client, out, zap.NewNop())

	err := parser.ParseSentence(context.Background(), "ܘܡܫܟܚܝܢܢ")
	require.NoError(t, err, "an invalid word list degrades to an empty sentence")
	assert.Equal(t, "Sentence: ܘܡܫܟܚܝܢܢ\n", out.String())
}

func TestParseSentenceInvalidWordAnalysis(t *testing.T) {
	client := &scriptedClient{replies: map[string][]string{
		"list_words":               {`{"words": ["ܚܢܢ"]}`},
		"prefixed_analytical_word": {`{"prefix": "ܘ", "unexpected": true}`},
	}}

	out := &strings.Builder{}
	parser := NewParser(client, out, zap.NewNop())

	err := parser.ParseSentence(context.Background(), "ܚܢܢ")
	require.NoError(t, err, "a failed word analysis skips the word, not the run")
	assert.Equal(t, "Sentence: ܚܢܢ\n\nWord: ܚܢܢ\n\n", out.String())
}

func TestParseSentenceRequestError(t *testing.T) {
	client := &scriptedClient{replies: map[string][]string{}}

	out := &strings.Builder{}
	parser := NewParser(client, out, zap.NewNop())

	err := parser.ParseSentence(context.Background(), "ܚܢܢ")
	require.NoError(t, err)
	assert.Equal(t, "Sentence: ܚܢܢ\n", out.String())
}

func TestParseFile(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "sentences.txt")
	require.NoError(t, os.WriteFile(dataPath, []byte("1 ܐܒ 2 ܓܕ"), 0644))

	// no scripted replies: every sentence degrades to its header line
	client := &scriptedClient{replies: map[string][]string{}}

	out := &strings.Builder{}
	parser := NewParser(client, out, zap.NewNop())

	err := parser.ParseFile(context.Background(), dataPath)
	require.NoError(t, err)
	assert.Equal(t, "Sentence: ܐܒ\nSentence: ܓܕ\n", out.String())
}

func TestParseFileMissingInput(t *testing.T) {
	parser := NewParser(&scriptedClient{}, &strings.Builder{}, zap.NewNop())

	err := parser.ParseFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "failed to read input file")
}
