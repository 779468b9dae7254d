package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/voice-notes/internal/metrics"
)

// Run selects one pending record, transcribes and summarizes its audio and
// writes the results back. Finding nothing is a successful no-op.
func (p *implProcessor) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	report := Report{State: StateIdle}

	p.enter(ctx, &report, StateSelecting)
	rec, err := p.source.FetchNextPending(ctx)
	if err != nil {
		return p.finish(ctx, report, start, fmt.Errorf("select record: %w", err))
	}
	if rec == nil {
		p.logger.Info(ctx, "No pending recordings to process")
		report.State = StateDone
		return p.finish(ctx, report, start, nil)
	}
	if !rec.Eligible() {
		return p.finish(ctx, report, start, fmt.Errorf("select record: page %s already has a transcript", rec.ID))
	}

	report.RecordID = rec.ID
	report.AudioURL = rec.AudioURL
	p.logger.Info(ctx, "Processing recording %s: %s", rec.ID, rec.AudioURL)

	p.enter(ctx, &report, StateTranscribing)
	outcome := p.transcriber.Transcribe(ctx, rec.AudioURL)
	if outcome.Failed() {
		report.State = StateAborted
		return p.finish(ctx, report, start, outcome.Err())
	}
	report.Transcript = outcome.Text

	p.enter(ctx, &report, StateSummarizing)
	result, err := p.summarizer.Summarize(ctx, outcome.Text)
	if err != nil {
		return p.finish(ctx, report, start, fmt.Errorf("summarize: %w", err))
	}
	report.Summary = result.Summary
	report.Keywords = result.Keywords

	// keywords are reported but not stored on the record
	p.enter(ctx, &report, StateWriting)
	if err := p.sink.WriteResults(ctx, rec.ID, outcome.Text, result.Summary); err != nil {
		return p.finish(ctx, report, start, fmt.Errorf("write results: %w", err))
	}

	report.State = StateDone
	return p.finish(ctx, report, start, nil)
}

func (p *implProcessor) enter(ctx context.Context, report *Report, next State) {
	p.logger.Debug(ctx, "State %s -> %s", report.State, next)
	report.State = next
}

func (p *implProcessor) finish(ctx context.Context, report Report, start time.Time, err error) (Report, error) {
	report.Duration = time.Since(start)

	outcome := metrics.OutcomeFailed
	switch {
	case report.NoOp():
		outcome = metrics.OutcomeNoop
	case report.State == StateDone:
		outcome = metrics.OutcomeDone
		p.logger.Info(ctx, "Processing completed for %s in %s", report.RecordID, report.Duration)
	case report.State == StateAborted:
		outcome = metrics.OutcomeAborted
		p.logger.Error(ctx, "Run aborted for %s: %v", report.RecordID, err)
	default:
		p.logger.Error(ctx, "Run failed while %s: %v", report.State, err)
	}

	if p.recorder != nil {
		p.recorder.RunFinished(outcome, report.Duration)
	}
	return report, err
}
