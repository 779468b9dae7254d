// Package nlp segments text into sentences and part-of-speech tagged tokens.
package nlp

import "context"

// Pipeline annotates raw text. Implementations must be deterministic for a
// fixed dictionary/model and input.
type Pipeline interface {
	Process(ctx context.Context, text string) (Doc, error)
}

// PartOfSpeech is the coarse, universal tag a token is mapped to
type PartOfSpeech int

const (
	Other PartOfSpeech = iota
	Noun
	ProperNoun
)

func (p PartOfSpeech) String() string {
	switch p {
	case Noun:
		return "NOUN"
	case ProperNoun:
		return "PROPN"
	default:
		return "X"
	}
}

type Token struct {
	Text string
	Tag  string // tagger-specific tag, e.g. "ns"
	POS  PartOfSpeech
}

type Sentence struct {
	Text   string
	Tokens []Token
}

type Doc struct {
	Sentences []Sentence
}

// Tokens returns every token of the document in order
func (d Doc) Tokens() []Token {
	var out []Token
	for _, s := range d.Sentences {
		out = append(out, s.Tokens...)
	}
	return out
}
