package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jomei/notionapi"
)

// FetchNextPending queries for the first page with an audio file and an
// empty transcript. The query is read-only and is not retried.
func (s *implStore) FetchNextPending(ctx context.Context) (*Record, error) {
	req := &notionapi.DatabaseQueryRequest{
		Filter:   s.pendingFilter(),
		PageSize: 1,
	}

	s.logger.Debug(ctx, "Querying database %s for pending recordings", s.opts.DatabaseID)

	resp, err := s.client.Database.Query(ctx, notionapi.DatabaseID(s.opts.DatabaseID), req)
	if err != nil {
		return nil, fmt.Errorf("query database %s: %w", s.opts.DatabaseID, err)
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}

	page := resp.Results[0]
	record := &Record{
		ID:         string(page.ID),
		AudioURL:   audioURL(page.Properties[s.opts.AudioProperty]),
		Transcript: plainText(page.Properties[s.opts.TranscriptProperty]),
		Summary:    plainText(page.Properties[s.opts.SummaryProperty]),
	}
	if record.AudioURL == "" {
		return nil, fmt.Errorf("page %s: %w", record.ID, ErrNoAudio)
	}

	return record, nil
}

func (s *implStore) pendingFilter() notionapi.Filter {
	return notionapi.AndCompoundFilter{
		notionapi.PropertyFilter{
			Property: s.opts.AudioProperty,
			Files:    &notionapi.FilesFilterCondition{IsNotEmpty: true},
		},
		notionapi.PropertyFilter{
			Property: s.opts.TranscriptProperty,
			RichText: &notionapi.TextFilterCondition{IsEmpty: true},
		},
	}
}

// WriteResults sets the transcript and summary properties in one update
func (s *implStore) WriteResults(ctx context.Context, recordID, transcript, summary string) error {
	req := &notionapi.PageUpdateRequest{
		Properties: notionapi.Properties{
			s.opts.TranscriptProperty: richTextProperty(transcript),
			s.opts.SummaryProperty:    richTextProperty(summary),
		},
	}

	if _, err := s.client.Page.Update(ctx, notionapi.PageID(recordID), req); err != nil {
		return fmt.Errorf("update page %s: %w", recordID, err)
	}

	s.logger.Debug(ctx, "Updated page %s (%s, %s)", recordID, s.opts.TranscriptProperty, s.opts.SummaryProperty)
	return nil
}

// audioURL returns the URL of the first file, Notion-hosted or external
func audioURL(prop notionapi.Property) string {
	files, ok := prop.(*notionapi.FilesProperty)
	if !ok || files == nil {
		return ""
	}
	for _, f := range files.Files {
		switch {
		case f.File != nil && f.File.URL != "":
			return f.File.URL
		case f.External != nil && f.External.URL != "":
			return f.External.URL
		}
	}
	return ""
}

func plainText(prop notionapi.Property) string {
	rt, ok := prop.(*notionapi.RichTextProperty)
	if !ok || rt == nil {
		return ""
	}
	var b strings.Builder
	for _, t := range rt.RichText {
		if t.PlainText != "" {
			b.WriteString(t.PlainText)
		} else if t.Text != nil {
			b.WriteString(t.Text.Content)
		}
	}
	return b.String()
}
