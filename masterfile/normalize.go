package masterfile

import (
	"fmt"
	"regexp"
	"strings"
)

// The normaliser turns raw zone-file text into logical lines: comments
// stripped, blank lines dropped, parenthesis-continued records joined onto
// one line. Each logical line remembers the raw line number it started on so
// parse errors can point at the right place.

// Line is one logical record line of a normalised zone file.
type Line struct {
	Number int // 1-based line number in the raw text
	Text   string
}

// Normalize strips comments, drops blank lines and joins multi-line records.
// It fails on parentheses left open at end of input.
func Normalize(text string) ([]Line, error) {
	raw := strings.Split(text, "\n")
	var lines []Line

	for i := 0; i < len(raw); i++ {
		start := i + 1
		line := strings.TrimSpace(removeComment(raw[i]))
		if line == "" {
			continue
		}

		if containsUnquotedParen(line) {
			joined, next, err := joinMultiLine(raw, i, line)
			if err != nil {
				return nil, err
			}
			line = joined
			i = next
		}

		lines = append(lines, Line{Number: start, Text: line})
	}

	return lines, nil
}

// joinMultiLine folds a parenthesis-continued record into a single line,
// starting from the already comment-stripped first line. Returns the joined
// text and the index of the last raw line consumed.
func joinMultiLine(raw []string, i int, line string) (string, int, error) {
	var full strings.Builder
	full.WriteString(line)

	open := countUnquoted(line, '(')
	closed := countUnquoted(line, ')')

	for open > closed {
		i++
		if i >= len(raw) {
			return "", i, fmt.Errorf("line %d: unterminated parentheses at end of input", i)
		}
		next := strings.TrimSpace(removeComment(raw[i]))
		if next == "" {
			continue
		}

		// Adjacent quoted strings concatenate without a separating space
		// so split TXT data stays one character-string sequence.
		soFar := strings.TrimSpace(full.String())
		if len(soFar) > 0 && soFar[len(soFar)-1] == '"' && strings.HasPrefix(next, "\"") {
			full.WriteString(next)
		} else {
			full.WriteString(" ")
			full.WriteString(next)
		}

		open += countUnquoted(next, '(')
		closed += countUnquoted(next, ')')
	}

	// Parentheses only group lines; once joined they carry no meaning.
	return stripUnquotedParens(full.String()), i, nil
}

// removeComment drops everything from the first semicolon that is not inside
// a quoted string.
func removeComment(line string) string {
	inQuotes := false
	for i, char := range line {
		if char == '"' {
			inQuotes = !inQuotes
		} else if !inQuotes && char == ';' {
			return line[:i]
		}
	}
	return line
}

func containsUnquotedParen(line string) bool {
	inQuotes := false
	for _, char := range line {
		if char == '"' {
			inQuotes = !inQuotes
		} else if !inQuotes && (char == '(' || char == ')') {
			return true
		}
	}
	return false
}

func countUnquoted(line string, target rune) int {
	inQuotes := false
	count := 0
	for _, char := range line {
		if char == '"' {
			inQuotes = !inQuotes
		} else if !inQuotes && char == target {
			count++
		}
	}
	return count
}

func stripUnquotedParens(line string) string {
	var b strings.Builder
	inQuotes := false
	for _, char := range line {
		if char == '"' {
			inQuotes = !inQuotes
		} else if !inQuotes && (char == '(' || char == ')') {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(char)
	}
	return strings.TrimSpace(b.String())
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Tokenize splits a logical line into whitespace-delimited tokens, keeping
// quoted sections intact.
func Tokenize(line string) []string {
	if !strings.Contains(line, "\"") {
		return strings.Fields(line)
	}

	line = whitespaceRun.ReplaceAllString(line, " ")

	var result []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		char := line[i]
		switch {
		case char == '"':
			inQuotes = !inQuotes
			current.WriteByte(char)
		case char == ' ' && !inQuotes:
			if current.Len() > 0 {
				result = append(result, current.String())
				current.Reset()
			}
		default:
			current.WriteByte(char)
		}
	}
	if current.Len() > 0 {
		result = append(result, current.String())
	}

	return result
}
