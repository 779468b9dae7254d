package nlp

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-ego/gse"
)

type gsePipeline struct {
	seg gse.Segmenter
}

// NewGSE loads gse's embedded Chinese dictionary. Loading takes a moment,
// so build one pipeline per process and share it.
func NewGSE() (Pipeline, error) {
	p := &gsePipeline{}
	if err := p.seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("load gse dictionary: %w", err)
	}
	return p, nil
}

func (p *gsePipeline) Process(ctx context.Context, text string) (Doc, error) {
	if err := ctx.Err(); err != nil {
		return Doc{}, err
	}

	var doc Doc
	for _, s := range SplitSentences(text) {
		sent := Sentence{Text: s}
		for _, sp := range p.seg.Pos(s, false) {
			if strings.TrimSpace(sp.Text) == "" {
				continue
			}
			sent.Tokens = append(sent.Tokens, Token{
				Text: sp.Text,
				Tag:  sp.Pos,
				POS:  Classify(sp.Pos),
			})
		}
		doc.Sentences = append(doc.Sentences, sent)
	}
	return doc, nil
}

// Classify maps an ICTCLAS/jieba style tag to a coarse part of speech
func Classify(tag string) PartOfSpeech {
	switch tag {
	case "nr", "nrt", "nrfg", "ns", "nt", "nz":
		return ProperNoun
	}
	if strings.HasPrefix(tag, "n") {
		return Noun
	}
	return Other
}
