package question

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"formbuilder/internal/model"
)

// placeholderPattern matches the literal in-passage marker for a blank.
var placeholderPattern = regexp.MustCompile(`\[Blank (\d+)\]`)

// PlaceholderFor returns the passage marker for the n-th blank (1-based).
func PlaceholderFor(n int) string {
	return fmt.Sprintf("[Blank %d]", n)
}

// TokenKind discriminates passage tokens
type TokenKind string

const (
	TokenText  TokenKind = "text"
	TokenBlank TokenKind = "blank"
)

// Token is one piece of a tokenized cloze passage: either literal text or a
// reference to a blank by index.
type Token struct {
	Kind  TokenKind `json:"kind"`
	Text  string    `json:"text,omitempty"`
	Blank int       `json:"blank"`
}

// Tokenize splits a passage on blank placeholders into a token stream for
// rendering. A placeholder whose number falls outside [1, blankCount]
// degrades to literal text instead of failing the render.
func Tokenize(passage string, blankCount int) []Token {
	var tokens []Token
	text := func(s string) {
		if s != "" {
			tokens = append(tokens, Token{Kind: TokenText, Text: s, Blank: -1})
		}
	}
	last := 0
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(passage, -1) {
		text(passage[last:m[0]])
		raw := passage[m[0]:m[1]]
		n, err := strconv.Atoi(passage[m[2]:m[3]])
		if err != nil || n < 1 || n > blankCount {
			text(raw)
		} else {
			tokens = append(tokens, Token{Kind: TokenBlank, Text: raw, Blank: n - 1})
		}
		last = m[1]
	}
	text(passage[last:])
	return tokens
}

// CreateBlank converts the first whole-word occurrence of word in the
// passage into a new blank. It reports false, leaving the spec untouched,
// when the word has no whole-word occurrence or already backs an existing
// blank. Word-boundary matching keeps "cat" from matching inside
// "category".
func CreateBlank(c *model.ClozeSpec, word string) bool {
	word = strings.TrimSpace(word)
	if word == "" {
		return false
	}
	for _, b := range c.Blanks {
		if b.Word == word {
			return false
		}
	}
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return false
	}
	loc := re.FindStringIndex(c.Passage)
	if loc == nil {
		return false
	}
	placeholder := PlaceholderFor(len(c.Blanks) + 1)
	c.Passage = c.Passage[:loc[0]] + placeholder + c.Passage[loc[1]:]
	c.Blanks = append(c.Blanks, model.Blank{Word: word, Options: []string{}, Placeholder: placeholder})
	return true
}

// ParseOptions turns a comma-separated string into a trimmed,
// order-preserving option list. An empty input yields an empty list,
// meaning a free-text blank.
func ParseOptions(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return []string{}
	}
	parts := strings.Split(csv, ",")
	options := make([]string, len(parts))
	for i, p := range parts {
		options[i] = strings.TrimSpace(p)
	}
	return options
}

// SetOptions replaces the option list of the blank at index. Reports false
// for an out-of-range index.
func SetOptions(c *model.ClozeSpec, index int, csv string) bool {
	if index < 0 || index >= len(c.Blanks) {
		return false
	}
	c.Blanks[index].Options = ParseOptions(csv)
	return true
}

// RemoveBlank deletes the blank at index, restoring its original word in
// the passage and renumbering the remaining blanks from 1. The renumbered
// list is built first and the passage rewritten in a single tokenizer pass
// against the pre-removal text, so no substitution can collide with another
// blank's placeholder mid-rewrite.
func RemoveBlank(c *model.ClozeSpec, index int) bool {
	if index < 0 || index >= len(c.Blanks) {
		return false
	}

	replacement := make(map[int]string, len(c.Blanks))
	replacement[index] = c.Blanks[index].Word

	remaining := make([]model.Blank, 0, len(c.Blanks)-1)
	for i, b := range c.Blanks {
		if i == index {
			continue
		}
		b.Placeholder = PlaceholderFor(len(remaining) + 1)
		replacement[i] = b.Placeholder
		remaining = append(remaining, b)
	}

	var sb strings.Builder
	for _, tok := range Tokenize(c.Passage, len(c.Blanks)) {
		if tok.Kind == TokenBlank {
			sb.WriteString(replacement[tok.Blank])
		} else {
			sb.WriteString(tok.Text)
		}
	}

	c.Passage = sb.String()
	c.Blanks = remaining
	return true
}

// WordBank derives the respondent's selectable option pool: the union of
// every blank's options minus values already consumed by a non-empty
// answer, in randomized order. It is a pure derivation over the current
// answer state and must be recomputed whenever that state changes.
func WordBank(blanks []model.Blank, answers []string) []string {
	used := make(map[string]bool, len(answers))
	for _, a := range answers {
		if a != "" {
			used[a] = true
		}
	}
	seen := make(map[string]bool)
	bank := make([]string, 0)
	for _, b := range blanks {
		for _, opt := range b.Options {
			if opt == "" || seen[opt] || used[opt] {
				continue
			}
			seen[opt] = true
			bank = append(bank, opt)
		}
	}
	rand.Shuffle(len(bank), func(i, j int) {
		bank[i], bank[j] = bank[j], bank[i]
	})
	return bank
}
