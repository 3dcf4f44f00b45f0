package quiz

import (
	"fmt"
	"strings"
	"testing"
)

const wellFormedBlock = `1. What is the main architectural style of Mysore Palace?
Options:
A) Indo-Saracenic
B) Gothic
C) Dravidian
D) Persian
Correct Answer: A

2. During which festival is the palace illuminated?
Options:
a) Holi
b) Diwali
c) Dasara
d) Pongal
Correct Answer: c

3. Who designed the current palace?
Options:
A. Edwin Lutyens
B. Henry Irwin
C. Frederick Stevens
D. Robert Chisholm
Answer: B

4. Which dynasty were the palace's patrons?
Options:
A) Hoysala
B) Wadiyar
C) Chola
D) Vijayanagara
Correct: b

5. What destroyed the old wooden palace?
Options:
A) Flood
B) Earthquake
C) War
D) Fire
Correct Answer: D
`

func TestParseTextBlocks(t *testing.T) {
	qs := Parse(wellFormedBlock)
	if len(qs) != 5 {
		t.Fatalf("parsed %d questions, want 5", len(qs))
	}
	for i, q := range qs {
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options", i+1, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex > 3 {
			t.Errorf("question %d correct index %d out of range", i+1, q.CorrectIndex)
		}
	}
	if qs[0].Prompt != "What is the main architectural style of Mysore Palace?" {
		t.Errorf("prompt = %q", qs[0].Prompt)
	}
	if qs[0].CorrectIndex != 0 || qs[1].CorrectIndex != 2 || qs[2].CorrectIndex != 1 {
		t.Errorf("correct indexes = %d %d %d", qs[0].CorrectIndex, qs[1].CorrectIndex, qs[2].CorrectIndex)
	}
	if qs[4].Options[3] != "Fire" {
		t.Errorf("option = %q, want Fire", qs[4].Options[3])
	}
}

func TestParseDropsMalformedBlocks(t *testing.T) {
	// Strip the answer marker from question 3; the rest must still parse.
	broken := strings.Replace(wellFormedBlock, "Answer: B\n", "\n", 1)
	qs := Parse(broken)
	if len(qs) != 4 {
		t.Fatalf("parsed %d questions, want 4", len(qs))
	}

	// Three options only.
	threeOpts := `1. Question one?
Options:
A) x
B) y
C) z
Correct Answer: A
`
	if qs := Parse(threeOpts); len(qs) != 0 {
		t.Errorf("three-option block parsed as %d questions, want 0", len(qs))
	}
}

func TestParseJSONForm(t *testing.T) {
	text := `[
		{"question": "Q1?", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 3},
		{"question": "Q2?", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 0}
	]`
	qs := Parse(text)
	if len(qs) != 2 {
		t.Fatalf("parsed %d questions, want 2", len(qs))
	}
	if qs[0].CorrectIndex != 3 || qs[1].Prompt != "Q2?" {
		t.Errorf("got %+v", qs)
	}
}

func TestParseJSONRejectsBadShape(t *testing.T) {
	// Index out of range invalidates the whole JSON parse; text fallback
	// then finds nothing either.
	text := `[{"question": "Q?", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 4}]`
	if qs := Parse(text); len(qs) != 0 {
		t.Errorf("parsed %d questions, want 0", len(qs))
	}
}

func TestParseEmptyInput(t *testing.T) {
	if qs := Parse(""); len(qs) != 0 {
		t.Errorf("parsed %d questions from empty input", len(qs))
	}
	if qs := Parse("no questions here"); len(qs) != 0 {
		t.Errorf("parsed %d questions from junk", len(qs))
	}
}

func TestSelectFallbackPolicy(t *testing.T) {
	// Under three parsed questions: use the bank.
	two := Parse(strings.Join(strings.Split(wellFormedBlock, "\n")[:14], "\n"))
	if len(two) >= MinQuestions {
		t.Fatalf("setup: expected <3 questions, got %d", len(two))
	}
	got := Select("mysore_palace", two, 5)
	if len(got) != 5 || got[0].Prompt != bank["mysore_palace"][0].Prompt {
		t.Errorf("expected mysore_palace fallback bank, got %d questions", len(got))
	}

	// Unknown place falls back to the generic set.
	got = Select("atlantis", nil, 5)
	if len(got) != len(genericBank) || got[0].Prompt != genericBank[0].Prompt {
		t.Errorf("expected generic bank for unknown place")
	}

	// Enough questions: truncate to n.
	five := Parse(wellFormedBlock)
	if got := Select("mysore_palace", five, 3); len(got) != 3 {
		t.Errorf("Select truncation = %d questions, want 3", len(got))
	}
}

func TestBuildPromptRoundTrips(t *testing.T) {
	p := BuildPrompt("Mysore Palace", map[string]string{"history": "built 1897-1912"}, 5)
	if !strings.Contains(p, "Mysore Palace") || !strings.Contains(p, "- history: built 1897-1912") {
		t.Fatalf("prompt missing content:\n%s", p)
	}

	// A response that follows the prompt's format literally must parse.
	var b strings.Builder
	for i := 1; i <= 3; i++ {
		fmt.Fprintf(&b, "%d. Question %d?\nOptions:\nA) one\nB) two\nC) three\nD) four\nCorrect Answer: B\n\n", i, i)
	}
	if qs := Parse(b.String()); len(qs) != 3 {
		t.Errorf("prompt-format response parsed as %d questions, want 3", len(qs))
	}
}
