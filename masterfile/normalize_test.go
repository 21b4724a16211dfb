package masterfile

import (
	"strings"
	"testing"
)

func TestNormalizeStripsCommentsAndBlanks(t *testing.T) {
	text := `; zone for example.com
www.example.com. IN A 192.0.2.1 ; web server

mail.example.com. IN A 192.0.2.2
`
	lines, err := Normalize(text)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("Expected 2 logical lines, got %d", len(lines))
	}
	if lines[0].Text != "www.example.com. IN A 192.0.2.1" {
		t.Errorf("Unexpected first line: %q", lines[0].Text)
	}
	if lines[0].Number != 2 {
		t.Errorf("Expected first line at raw line 2, got %d", lines[0].Number)
	}
	if lines[1].Number != 4 {
		t.Errorf("Expected second line at raw line 4, got %d", lines[1].Number)
	}
}

func TestNormalizeKeepsQuotedSemicolons(t *testing.T) {
	lines, err := Normalize(`txt.example.com. IN TXT "no; comment here" ; real comment`)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if !strings.Contains(lines[0].Text, `"no; comment here"`) {
		t.Errorf("Quoted semicolon was stripped: %q", lines[0].Text)
	}
	if strings.Contains(lines[0].Text, "real comment") {
		t.Errorf("Comment survived normalisation: %q", lines[0].Text)
	}
}

func TestNormalizeJoinsParenthesizedRecord(t *testing.T) {
	text := `example.com. IN SOA ns1.example.com. admin.example.com. (
	2023010101 ; Serial
	3600       ; Refresh
	1800       ; Retry
	604800     ; Expire
	86400 )    ; Minimum TTL
www.example.com. IN A 192.0.2.1
`
	lines, err := Normalize(text)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("Expected 2 logical lines, got %d", len(lines))
	}

	tokens := Tokenize(lines[0].Text)
	expected := []string{"example.com.", "IN", "SOA", "ns1.example.com.", "admin.example.com.",
		"2023010101", "3600", "1800", "604800", "86400"}
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i := range expected {
		if tokens[i] != expected[i] {
			t.Errorf("Token %d: expected %q, got %q", i, expected[i], tokens[i])
		}
	}

	if lines[1].Text != "www.example.com. IN A 192.0.2.1" {
		t.Errorf("Line after multi-line record is wrong: %q", lines[1].Text)
	}
}

func TestNormalizeConcatenatesAdjacentQuotedStrings(t *testing.T) {
	text := `txt.example.com. IN TXT ("first"
"second")
`
	lines, err := Normalize(text)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if !strings.Contains(lines[0].Text, `"first""second"`) {
		t.Errorf("Adjacent quoted strings were not concatenated: %q", lines[0].Text)
	}
}

func TestNormalizeUnterminatedParens(t *testing.T) {
	_, err := Normalize("example.com. IN SOA ns1. admin. (\n 1 2 3\n")
	if err == nil {
		t.Fatal("Expected error for unterminated parentheses")
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		line     string
		expected []string
	}{
		{
			line:     "www	IN	A	192.0.2.1",
			expected: []string{"www", "IN", "A", "192.0.2.1"},
		},
		{
			line:     `txt IN TXT "hello world"`,
			expected: []string{"txt", "IN", "TXT", `"hello world"`},
		},
		{
			line:     `txt IN TXT "one" "two three"`,
			expected: []string{"txt", "IN", "TXT", `"one"`, `"two three"`},
		},
		{
			line:     "",
			expected: nil,
		},
	}

	for _, test := range tests {
		result := Tokenize(test.line)
		if len(result) != len(test.expected) {
			t.Errorf("Tokenize(%q) = %v, expected %v", test.line, result, test.expected)
			continue
		}
		for i := range result {
			if result[i] != test.expected[i] {
				t.Errorf("Tokenize(%q)[%d] = %q, expected %q", test.line, i, result[i], test.expected[i])
			}
		}
	}
}
