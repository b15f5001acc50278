package morphology

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/syromorph/syromorph/pkg/llm"
)

// Client is the request surface the parse driver needs from pkg/llm.
type Client interface {
	Request(ctx context.Context, transcript *llm.Transcript, tool llm.ToolSpec) (string, error)
}

const indentUnit = "    "

// The corpus numbers its sentences; any run of digits separates two
// sentences.
var sentenceSeparator = regexp.MustCompile(`\d+`)

// SplitSentences splits the corpus on sentence numbers, trimming whitespace
// and dropping empty fragments.
func SplitSentences(content string) []string {
	sentences := []string{}
	for _, fragment := range sentenceSeparator.Split(content, -1) {
		fragment = strings.TrimSpace(fragment)
		if fragment != "" {
			sentences = append(sentences, fragment)
		}
	}
	return sentences
}

// Parser drives the per-sentence question loop against the model and writes
// the morphological report. The model does all the analysis; the parser only
// asks the questions in tree order, validates the JSON answers, and formats
// the report.
type Parser struct {
	client Client
	out    io.Writer
	logger *zap.Logger
}

func NewParser(client Client, out io.Writer, logger *zap.Logger) *Parser {
	return &Parser{
		client: client,
		out:    out,
		logger: logger,
	}
}

// ParseFile reads the corpus at dataPath and parses every sentence in it.
func (p *Parser) ParseFile(ctx context.Context, dataPath string) error {
	content, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	sentences := SplitSentences(string(content))
	for i, sentence := range sentences {
		p.logger.Info("parsing sentence",
			zap.Int("sentence", i+1),
			zap.Int("total", len(sentences)),
		)
		if err := p.ParseSentence(ctx, sentence); err != nil {
			return err
		}
	}

	return nil
}

// ParseSentence asks the model for the sentence's words and runs the analysis
// tree over each of them. An invalid word-list answer degrades to an empty
// sentence; a failed word analysis skips the rest of that word's subtree.
// Only I/O errors abort the run.
func (p *Parser) ParseSentence(ctx context.Context, sentence string) error {
	if _, err := fmt.Fprintf(p.out, "Sentence: %s\n", sentence); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	transcript := llm.NewTranscript()
	transcript.AddSystem(SystemMessage)
	transcript.AddUser(ListWordsQuestion(sentence))

	words := []string{}
	raw, err := p.client.Request(ctx, transcript, listWordsTool)
	if err != nil {
		p.logger.Warn("word listing failed", zap.Error(err))
	} else {
		list := ListWords{}
		if err := decodeStrict(raw, &list); err != nil {
			p.logger.Warn("model returned invalid JSON",
				zap.String("response", raw),
				zap.Error(err),
			)
		} else {
			words = list.Words
		}
	}

	for _, word := range words {
		if err := p.parseWord(ctx, transcript, word, AnalysisTree(), 0); err != nil {
			p.logger.Warn("word parsing failed",
				zap.String("word", word),
				zap.Error(err),
			)
		}
		if _, err := fmt.Fprintln(p.out); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return nil
}

func (p *Parser) parseWord(ctx context.Context, transcript *llm.Transcript, word string, node *Node, depth int) error {
	indent := strings.Repeat(indentUnit, depth)
	if _, err := fmt.Fprintf(p.out, "\n%sWord: %s\n", indent, word); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	analysis := node.New()
	transcript.AddUser(analysis.Question(word))

	raw, err := p.client.Request(ctx, transcript, node.Tool)
	if err != nil {
		return err
	}

	if err := decodeStrict(raw, analysis); err != nil {
		p.logger.Warn("model returned invalid JSON",
			zap.String("response", raw),
			zap.Error(err),
		)
		return fmt.Errorf("invalid %s arguments: %w", node.Tool.Name, err)
	}

	if _, err := fmt.Fprintf(p.out, "%s%s\n", indent+indentUnit, analysis); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	for i, child := range node.Children {
		if child == nil {
			continue
		}
		part, err := analysis.Part(word, i)
		if err != nil {
			return err
		}
		if part == "" {
			continue
		}
		if err := p.parseWord(ctx, transcript, part, child, depth+1); err != nil {
			return err
		}
	}

	return nil
}
