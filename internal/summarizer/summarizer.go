package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/voice-notes/internal/nlp"
)

// Summarize keeps the leading sentences as the summary and collects the
// first noun / proper-noun tokens as keywords, both in document order.
func (s *implSummarizer) Summarize(ctx context.Context, text string) (Result, error) {
	doc, err := s.pipeline.Process(ctx, text)
	if err != nil {
		return Result{}, fmt.Errorf("nlp pipeline: %w", err)
	}

	result := Result{
		Summary:  s.summary(doc),
		Keywords: s.keywords(doc),
	}

	s.logger.Info(ctx, "Summarized %d sentences into %d characters, keywords: %s",
		len(doc.Sentences), len([]rune(result.Summary)), result.KeywordString())
	return result, nil
}

func (s *implSummarizer) summary(doc nlp.Doc) string {
	n := len(doc.Sentences)
	if n > s.maxSentences {
		n = s.maxSentences
	}
	parts := make([]string, 0, n)
	for _, sent := range doc.Sentences[:n] {
		parts = append(parts, sent.Text)
	}
	return strings.Join(parts, " ")
}

func (s *implSummarizer) keywords(doc nlp.Doc) []string {
	keywords := make([]string, 0, s.maxKeywords)
	for _, tok := range doc.Tokens() {
		if len(keywords) == s.maxKeywords {
			break
		}
		if tok.POS == nlp.Noun || tok.POS == nlp.ProperNoun {
			keywords = append(keywords, tok.Text)
		}
	}
	return keywords
}
