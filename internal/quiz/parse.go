package quiz

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/Adithya4code/Ambari/internal/ambari"
)

// MinQuestions is the smallest parse result worth keeping. Below it the
// caller substitutes the fallback bank (see Select).
const MinQuestions = 3

var (
	blockSplitRe = regexp.MustCompile(`(?m)\d+\.\s+`)
	promptRe     = regexp.MustCompile(`(?is)^(.+?)\s*options:`)
	optionLineRe = regexp.MustCompile(`(?im)^\s*([a-d])[).]\s*(.+?)\s*$`)
	answerRe     = regexp.MustCompile(`(?i)(?:correct answer:|correct:|answer:)\s*([a-d])`)
)

// Parse converts a generation response into questions. A strict JSON array
// is tried first; otherwise the text is scanned for numbered question
// blocks in the prompt's format:
//
//	1. <question>
//	Options:
//	A) ... B) ... C) ... D) ...
//	Correct Answer: <letter>
//
// Blocks that don't match the shape exactly (wrong option count, missing
// answer marker, answer letter out of range) are skipped, never fatal. The
// result may be empty.
func Parse(text string) []ambari.QuizQuestion {
	if qs := parseJSON(text); qs != nil {
		return qs
	}
	return parseText(text)
}

func parseJSON(text string) []ambari.QuizQuestion {
	var qs []ambari.QuizQuestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &qs); err != nil {
		return nil
	}
	if len(qs) == 0 {
		return nil
	}
	for _, q := range qs {
		if q.Prompt == "" || len(q.Options) != 4 || q.CorrectIndex < 0 || q.CorrectIndex > 3 {
			return nil
		}
	}
	return qs
}

func parseText(text string) []ambari.QuizQuestion {
	var qs []ambari.QuizQuestion

	for _, block := range blockSplitRe.Split(text, -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}

		m := promptRe.FindStringSubmatch(block)
		if m == nil {
			continue
		}
		prompt := strings.TrimSpace(m[1])
		if prompt == "" {
			continue
		}

		lines := optionLineRe.FindAllStringSubmatch(block, -1)
		if len(lines) != 4 {
			continue
		}
		options := make([]string, 4)
		for i, l := range lines {
			options[i] = l[2]
		}

		am := answerRe.FindStringSubmatch(block)
		if am == nil {
			continue
		}
		idx := int(strings.ToLower(am[1])[0] - 'a')
		if idx < 0 || idx >= len(options) {
			continue
		}

		qs = append(qs, ambari.QuizQuestion{
			Prompt:       prompt,
			Options:      options,
			CorrectIndex: idx,
		})
	}
	return qs
}

// Select applies the caller policy on a parse result: fewer than
// MinQuestions usable questions discards the parse entirely in favor of the
// static bank for the place, otherwise at most n questions are returned.
func Select(placeID string, parsed []ambari.QuizQuestion, n int) []ambari.QuizQuestion {
	if len(parsed) < MinQuestions {
		return Fallback(placeID)
	}
	if n > 0 && len(parsed) > n {
		return parsed[:n]
	}
	return parsed
}
