package morphology

import (
	"encoding/json"
	"fmt"
	"strings"
)

// emptyMark stands in for an absent affix in the report.
const emptyMark = "∅"

// Analysis is one grammatical question about a word together with the model's
// structured answer. Part selects the slice of the word a child question is
// asked about; indexes follow the child order of the node the analysis sits
// on.
type Analysis interface {
	fmt.Stringer
	Question(word string) string
	Part(word string, index int) (string, error)
}

// ListWords is the sentence-level answer: the segmentation into words.
type ListWords struct {
	// Words is the list of Syriac words.
	Words []string `json:"words" jsonschema_description:"The list of Syriac words"`
}

// PrefixedAnalyticalWord reports a prefixed preposition or the conjunction ܘ.
// Parts: the prefix, then the remainder of the word.
type PrefixedAnalyticalWord struct {
	Prefix *string `json:"prefix" jsonschema_description:"The prefixed analytical word of the word"`
}

func (a *PrefixedAnalyticalWord) Question(word string) string {
	return fmt.Sprintf("Is there any prefixed analytical word (preposition or ܘ) in the word %s?", word)
}

func (a *PrefixedAnalyticalWord) Part(word string, index int) (string, error) {
	prefix := deref(a.Prefix)
	switch index {
	case 0:
		return prefix, nil
	case 1:
		return dropLeadingRunes(word, runeLen(prefix)), nil
	default:
		return "", fmt.Errorf("invalid part index %d for prefixed analytical word", index)
	}
}

func (a *PrefixedAnalyticalWord) String() string {
	return "Prefix: " + orEmptyMark(deref(a.Prefix))
}

// SuffixedPronoun reports a possessive, objective, or participle-attached
// pronoun suffix. Parts: the stem, then the suffix.
type SuffixedPronoun struct {
	Suffix *string `json:"suffix" jsonschema_description:"The suffixed pronoun of the word"`
}

func (a *SuffixedPronoun) Question(word string) string {
	return fmt.Sprintf("Is there any suffixed pronoun (possesive, objective, or attached to participles) in the word %s?", word)
}

func (a *SuffixedPronoun) Part(word string, index int) (string, error) {
	suffix := deref(a.Suffix)
	switch index {
	case 0:
		return dropTrailingRunes(word, runeLen(suffix)), nil
	case 1:
		return suffix, nil
	default:
		return "", fmt.Errorf("invalid part index %d for suffixed pronoun", index)
	}
}

func (a *SuffixedPronoun) String() string {
	return "Suffix: " + orEmptyMark(deref(a.Suffix))
}

// CompleteForm restores a truncated surface form to its full spelling. The
// single part is the complete form itself.
type CompleteForm struct {
	Complete string `json:"complete" jsonschema_description:"The complete form of the word"`
}

func (a *CompleteForm) Question(word string) string {
	return fmt.Sprintf("What is the complete form of the word %s?", word)
}

func (a *CompleteForm) Part(word string, index int) (string, error) {
	return a.Complete, nil
}

func (a *CompleteForm) String() string {
	return "Complete form: " + orEmptyMark(a.Complete)
}

// PrefixedSuffixedMorpheme splits a complete form into prefixed morpheme,
// core, and suffixed morpheme. Parts follow that order.
type PrefixedSuffixedMorpheme struct {
	Prefix *string `json:"prefix" jsonschema_description:"The prefixed morpheme of the word"`
	Suffix *string `json:"suffix" jsonschema_description:"The suffixed morpheme of the word"`
}

func (a *PrefixedSuffixedMorpheme) Question(word string) string {
	return fmt.Sprintf("Is there any prefixed morpheme or suffixed morpheme in the word %s?", word)
}

func (a *PrefixedSuffixedMorpheme) Part(word string, index int) (string, error) {
	prefix := deref(a.Prefix)
	suffix := deref(a.Suffix)
	switch index {
	case 0:
		return prefix, nil
	case 1:
		return middleRunes(word, runeLen(prefix), runeLen(suffix)), nil
	case 2:
		return suffix, nil
	default:
		return "", fmt.Errorf("invalid part index %d for prefixed/suffixed morpheme", index)
	}
}

func (a *PrefixedSuffixedMorpheme) String() string {
	return fmt.Sprintf("Prefix: %s, Suffix: %s", orEmptyMark(deref(a.Prefix)), orEmptyMark(deref(a.Suffix)))
}

// MorphemeType classifies a single morpheme.
type MorphemeType struct {
	MorphemeType string `json:"morpheme_type" jsonschema_description:"The type of morpheme of the word"`
}

func (a *MorphemeType) Question(word string) string {
	return fmt.Sprintf("What category does the morpheme of the word %s belong to? "+
		"Choose from preformative, passive prefix, verbal stem morpheme, "+
		"verbal ending, nominal ending, or emphatic marker.", word)
}

func (a *MorphemeType) Part(word string, index int) (string, error) {
	return a.MorphemeType, nil
}

func (a *MorphemeType) String() string {
	return "Morpheme type: " + orEmptyMark(a.MorphemeType)
}

// decodeStrict unmarshals the model's tool arguments, rejecting unknown
// fields. A weaker model hallucinating extra fields is treated the same as
// malformed JSON.
func decodeStrict(data string, v any) error {
	decoder := json.NewDecoder(strings.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orEmptyMark(s string) string {
	if s == "" {
		return emptyMark
	}
	return s
}

// The affix slicers count runes, not bytes: Syriac is multi-byte UTF-8 and
// the model reports affixes as character sequences. Lengths clamp instead of
// panicking when a model reports an affix longer than the word.

func runeLen(s string) int {
	return len([]rune(s))
}

func dropLeadingRunes(s string, n int) string {
	runes := []rune(s)
	if n >= len(runes) {
		return ""
	}
	return string(runes[n:])
}

func dropTrailingRunes(s string, n int) string {
	runes := []rune(s)
	if n >= len(runes) {
		return ""
	}
	return string(runes[:len(runes)-n])
}

func middleRunes(s string, lead, trail int) string {
	runes := []rune(s)
	if lead+trail >= len(runes) {
		return ""
	}
	return string(runes[lead : len(runes)-trail])
}
