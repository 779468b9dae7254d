package summarizer

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/nlp"
)

// stubPipeline splits with the real sentence splitter and tags tokens
// from a fixed table, one token per listed word.
type stubPipeline struct {
	tags map[string]string
	err  error
}

func (p *stubPipeline) Process(ctx context.Context, text string) (nlp.Doc, error) {
	if p.err != nil {
		return nlp.Doc{}, p.err
	}
	var doc nlp.Doc
	for _, s := range nlp.SplitSentences(text) {
		sent := nlp.Sentence{Text: s}
		for _, w := range strings.Fields(stripPunct(s)) {
			tag := p.tags[w]
			sent.Tokens = append(sent.Tokens, nlp.Token{Text: w, Tag: tag, POS: nlp.Classify(tag)})
		}
		doc.Sentences = append(doc.Sentences, sent)
	}
	return doc, nil
}

func stripPunct(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune("。！？!?.,，", r) {
			return ' '
		}
		return r
	}, s)
}

func TestSummarizeScenario(t *testing.T) {
	// words are space separated so the stub can tokenize them
	text := "你好 世界。今天 天气 不错。我们 去 散步。而且 很 开心。"
	p := &stubPipeline{tags: map[string]string{
		"世界": "n", "今天": "t", "天气": "n", "我们": "r", "散步": "v", "开心": "a",
	}}

	got, err := New(p, logger.Nop(), 0, 0).Summarize(context.Background(), text)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	wantSummary := "你好 世界。 今天 天气 不错。 我们 去 散步。"
	if got.Summary != wantSummary {
		t.Errorf("Summary = %q, want %q", got.Summary, wantSummary)
	}
	if want := []string{"世界", "天气"}; !reflect.DeepEqual(got.Keywords, want) {
		t.Errorf("Keywords = %q, want %q", got.Keywords, want)
	}
	if got.KeywordString() != "世界, 天气" {
		t.Errorf("KeywordString() = %q", got.KeywordString())
	}
}

func TestSummarizeLimits(t *testing.T) {
	text := "北京 上海。广州 深圳。杭州 南京。成都 重庆。武汉 西安。"
	tags := map[string]string{}
	for _, city := range strings.Fields(stripPunct(text)) {
		tags[city] = "ns"
	}
	p := &stubPipeline{tags: tags}

	got, err := New(p, logger.Nop(), 3, 5).Summarize(context.Background(), text)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if n := len(nlp.SplitSentences(got.Summary)); n != 3 {
		t.Errorf("summary has %d sentences, want 3: %q", n, got.Summary)
	}
	want := []string{"北京", "上海", "广州", "深圳", "杭州"}
	if !reflect.DeepEqual(got.Keywords, want) {
		t.Errorf("Keywords = %q, want %q (input order, max 5)", got.Keywords, want)
	}
}

func TestSummarizeKeepsDuplicateKeywords(t *testing.T) {
	p := &stubPipeline{tags: map[string]string{"猫": "n", "狗": "n"}}

	got, err := New(p, logger.Nop(), 3, 5).Summarize(context.Background(), "猫 狗 猫。")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"猫", "狗", "猫"}; !reflect.DeepEqual(got.Keywords, want) {
		t.Errorf("Keywords = %q, want %q", got.Keywords, want)
	}
}

func TestSummarizeShortText(t *testing.T) {
	p := &stubPipeline{}

	got, err := New(p, logger.Nop(), 3, 5).Summarize(context.Background(), "只有一句")
	if err != nil {
		t.Fatal(err)
	}
	if got.Summary != "只有一句" {
		t.Errorf("Summary = %q", got.Summary)
	}
	if len(got.Keywords) != 0 {
		t.Errorf("Keywords = %q, want none", got.Keywords)
	}
}

func TestSummarizePipelineError(t *testing.T) {
	boom := errors.New("model not loaded")
	p := &stubPipeline{err: boom}

	_, err := New(p, logger.Nop(), 3, 5).Summarize(context.Background(), "x")
	if !errors.Is(err, boom) {
		t.Errorf("Summarize() error = %v, want wrapping %v", err, boom)
	}
}
