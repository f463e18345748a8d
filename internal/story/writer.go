package story

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// Section is one generated fragment of the story document.
// Day 0 is the storyboard; days 1..N are narrative sections.
type Section struct {
	Day  int       `json:"day"`
	Date time.Time `json:"date,omitzero"`
	Text string    `json:"text"`
}

// Story is the completed output of one story run.
type Story struct {
	Premise     string    `json:"premise"`
	ModelName   string    `json:"model"`
	Days        int       `json:"days"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Storyboard  string    `json:"storyboard"`
	Sections    []Section `json:"sections"`
	Document    string    `json:"-"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Params configures one story run.
type Params struct {
	// Premise is the story setup. Required.
	Premise string

	// Days is the number of narrative days to write. Required, >= 1.
	Days int

	// StartDate fixes the story's first calendar day. When zero, a
	// deterministic date is derived from the premise.
	StartDate time.Time

	// Now overrides the clock, used for date derivation and the
	// generated-at stamp. Defaults to time.Now.
	Now func() time.Time

	// Progress, when set, receives each section as soon as it is
	// generated. Day 0 is the storyboard.
	Progress func(Section)
}

// Writer drives the story generation loop: one storyboard call followed
// by one narrative call per day, strictly sequential, each seeing the
// whole transcript so far. Exactly Days+1 model calls per run.
type Writer struct {
	model  Model
	config Config
}

// NewWriter creates a story writer backed by the given model.
func NewWriter(model Model, cfg Config) *Writer {
	return &Writer{model: model, config: cfg}
}

// Write runs the full generation loop and returns the assembled story.
// Model failures propagate immediately; there are no retries.
func (w *Writer) Write(ctx context.Context, params Params) (*Story, error) {
	if w.model == nil {
		return nil, fmt.Errorf("%w: model is required", ErrInvalidParams)
	}
	if strings.TrimSpace(params.Premise) == "" {
		return nil, fmt.Errorf("%w: premise is required", ErrInvalidParams)
	}
	if params.Days < 1 {
		return nil, fmt.Errorf("%w: day count must be at least 1, got %d", ErrInvalidParams, params.Days)
	}

	now := time.Now
	if params.Now != nil {
		now = params.Now
	}

	start := params.StartDate
	if start.IsZero() {
		start = DeriveStartDate(params.Premise, now())
	}

	transcript := NewTranscript()

	// Storyboard pass: plan the whole story before writing any day.
	transcript.Add(RoleUser, StoryboardPrompt(params.Premise, params.Days, start))
	storyboard, err := w.model.Complete(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("storyboard generation: %w", err)
	}
	transcript.Add(RoleAssistant, storyboard)

	story := &Story{
		Premise:     params.Premise,
		ModelName:   w.config.ModelName,
		Days:        params.Days,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, params.Days-1),
		Storyboard:  storyboard,
		GeneratedAt: now(),
	}
	story.Sections = append(story.Sections, Section{Day: 0, Text: storyboard})
	if params.Progress != nil {
		params.Progress(story.Sections[0])
	}

	for day := 1; day <= params.Days; day++ {
		date := start.AddDate(0, 0, day-1)

		transcript.Add(RoleUser, DayPrompt(day, date))
		text, err := w.model.Complete(ctx, transcript)
		if err != nil {
			return nil, fmt.Errorf("day %d generation: %w", day, err)
		}
		transcript.Add(RoleAssistant, text)

		section := Section{Day: day, Date: date, Text: text}
		story.Sections = append(story.Sections, section)
		if params.Progress != nil {
			params.Progress(section)
		}
	}

	story.Document = assembleDocument(story)
	return story, nil
}

// assembleDocument concatenates the buffered sections into the final
// markdown document: heading, metadata, planning section, then one
// section per day in order.
func assembleDocument(s *Story) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# %s\n\n", s.Premise))
	b.WriteString(fmt.Sprintf("*Generated on %s*  \n", s.GeneratedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("*Story Duration: %d days*  \n", s.Days))
	b.WriteString(fmt.Sprintf("*Story Start Date: %s*  \n", FormatLongDate(s.StartDate)))
	b.WriteString(fmt.Sprintf("*Provider: OpenAI | Model: %s*\n\n", s.ModelName))
	b.WriteString("---\n\n")

	b.WriteString("## Story Planning\n\n")
	b.WriteString(s.Storyboard + "\n\n")
	b.WriteString("---\n\n")
	b.WriteString("## The Story\n\n")

	for _, section := range s.Sections {
		if section.Day == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("### Day %d: %s\n\n", section.Day, FormatDayDate(section.Date)))
		b.WriteString(section.Text + "\n\n")
	}

	return b.String()
}

// Save persists the story document to path, or to a timestamped default
// filename when path is empty. Returns the path written.
func (s *Story) Save(path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("story_openai_%s.md", s.GeneratedAt.Format("20060102_150405"))
	}
	if err := os.WriteFile(path, []byte(s.Document), 0o644); err != nil {
		return "", fmt.Errorf("failed to save story: %w", err)
	}
	return path, nil
}
