package nlp

import (
	"strings"
	"unicode"
)

// closers may follow a terminator and still belong to the same sentence
const closers = "\"'”’」』）)】"

func isTerminator(r rune) bool {
	switch r {
	case '。', '！', '？', '!', '?', '；', ';', '…', '\n':
		return true
	}
	return false
}

// absorbs reports whether r continues a sentence that just ended:
// another terminator other than a newline, a dot or a closing quote
func absorbs(r rune) bool {
	if r == '\n' {
		return false
	}
	return isTerminator(r) || r == '.' || strings.ContainsRune(closers, r)
}

// SplitSentences splits text on sentence-final punctuation, keeping the
// punctuation with its sentence. A '.' only ends a sentence when followed
// by whitespace or the end of text so decimals and URLs stay intact.
func SplitSentences(text string) []string {
	runes := []rune(text)
	var out []string
	start := 0

	emit := func(end int) {
		s := strings.TrimSpace(string(runes[start:end]))
		if s != "" {
			out = append(out, s)
		}
		start = end
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		end := false
		switch {
		case isTerminator(r):
			end = true
		case r == '.':
			end = i+1 == len(runes) || unicode.IsSpace(runes[i+1])
		}
		if !end {
			continue
		}
		// absorb repeated terminators ("？！", "...") and closing quotes
		j := i + 1
		for j < len(runes) && r != '\n' && absorbs(runes[j]) {
			j++
		}
		emit(j)
		i = j - 1
	}
	emit(len(runes))

	return out
}
