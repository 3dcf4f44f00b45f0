package quiz

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Adithya4code/Ambari/internal/ambari"
)

// Generator produces quiz questions for a place, typically by calling an
// external text-generation service. Implementations live outside this
// package; the CLI falls back to the static bank when none is wired.
type Generator interface {
	Generate(ctx context.Context, place ambari.Place, n int) ([]ambari.QuizQuestion, error)
}

// BuildPrompt renders the generation request for a place. The format is the
// one Parse's text fallback understands, so a model following the prompt
// literally round-trips through the parser.
func BuildPrompt(placeName string, facts map[string]string, n int) string {
	keys := make([]string, 0, len(facts))
	for k := range facts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d multiple-choice quiz questions about %s based on these facts:\n\n", n, placeName)
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %s\n", k, facts[k])
	}
	b.WriteString(`
Each question should have:
1. A clear question about the location
2. Exactly 4 options (labeled A, B, C, D)
3. One correct answer

Format each question like this:
1. [Question text]
Options:
A) [Option 1]
B) [Option 2]
C) [Option 3]
D) [Option 4]
Correct Answer: [A, B, C, or D]

Make sure the questions test understanding of the provided facts, varying in difficulty. The correct answer should always be based on the facts provided.
`)
	return b.String()
}
