package morphology

import "github.com/syromorph/syromorph/pkg/llm"

var (
	listWordsTool                = llm.MustFunctionTool(ListWords{}, "List the words in the sentence")
	prefixedAnalyticalWordTool   = llm.MustFunctionTool(PrefixedAnalyticalWord{}, "Any prefixed analytical word of the word")
	suffixedPronounTool          = llm.MustFunctionTool(SuffixedPronoun{}, "Any suffixed pronoun of the word")
	completeFormTool             = llm.MustFunctionTool(CompleteForm{}, "Provide the complete form of the word")
	prefixedSuffixedMorphemeTool = llm.MustFunctionTool(PrefixedSuffixedMorpheme{}, "Any prefixed or suffixed morpheme of the word")
	morphemeTypeTool             = llm.MustFunctionTool(MorphemeType{}, "Provide the type of morpheme of the word")
)

// Node pairs an analysis question with the follow-up questions asked about
// each of its parts. A nil child stops the descent on that part.
type Node struct {
	Tool     llm.ToolSpec
	New      func() Analysis
	Children []*Node
}

// AnalysisTree returns the fixed question tree applied to every word:
// strip the analytical prefix, split off the pronoun suffix, restore the
// complete forms, split the morphemes, and classify each one.
func AnalysisTree() *Node {
	morphemeType := func() *Node {
		return &Node{
			Tool: morphemeTypeTool,
			New:  func() Analysis { return &MorphemeType{} },
		}
	}

	return &Node{
		Tool: prefixedAnalyticalWordTool,
		New:  func() Analysis { return &PrefixedAnalyticalWord{} },
		Children: []*Node{
			nil, // the prefix itself needs no further analysis
			{
				Tool: suffixedPronounTool,
				New:  func() Analysis { return &SuffixedPronoun{} },
				Children: []*Node{
					{
						Tool: completeFormTool,
						New:  func() Analysis { return &CompleteForm{} },
						Children: []*Node{
							{
								Tool: prefixedSuffixedMorphemeTool,
								New:  func() Analysis { return &PrefixedSuffixedMorpheme{} },
								Children: []*Node{
									morphemeType(),
									morphemeType(),
									morphemeType(),
								},
							},
						},
					},
					{
						Tool: completeFormTool,
						New:  func() Analysis { return &CompleteForm{} },
					},
				},
			},
		},
	}
}
