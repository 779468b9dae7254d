package store

import "github.com/jomei/notionapi"

// maxTextContent is Notion's limit for a single rich text object
const maxTextContent = 2000

func richTextProperty(content string) *notionapi.RichTextProperty {
	return &notionapi.RichTextProperty{
		Type:     notionapi.PropertyTypeRichText,
		RichText: richText(content),
	}
}

// richText splits content into consecutive text objects of at most
// maxTextContent runes so the stored value equals content
func richText(content string) []notionapi.RichText {
	chunks := chunkRunes(content, maxTextContent)
	out := make([]notionapi.RichText, 0, len(chunks))
	for _, c := range chunks {
		out = append(out, notionapi.RichText{
			Type: notionapi.ObjectTypeText,
			Text: &notionapi.Text{Content: c},
		})
	}
	return out
}

func chunkRunes(s string, size int) []string {
	if s == "" {
		return nil
	}
	runes := []rune(s)
	var out []string
	for len(runes) > size {
		out = append(out, string(runes[:size]))
		runes = runes[size:]
	}
	return append(out, string(runes))
}
