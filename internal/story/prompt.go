package story

import (
	"fmt"
	"strings"
	"time"
)

// StoryboardPrompt asks the model to plan the whole story before any
// narrative is written: character profiles plus a day-by-day outline.
func StoryboardPrompt(premise string, days int, start time.Time) string {
	startStr := FormatLongDate(start)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Based on this story premise: %q\n\n", premise))
	b.WriteString(fmt.Sprintf("Create a detailed storyboard and character profiles for a %d-day story starting on %s.\n\n", days, startStr))
	b.WriteString("Please provide:\n\n")
	b.WriteString("1. **Character Profiles**: For each main character, include:\n")
	b.WriteString("   - Full name\n")
	b.WriteString("   - Age\n")
	b.WriteString("   - Birthday (specific date, make it realistic relative to their age)\n")
	b.WriteString("   - Brief backstory (2-3 sentences covering their background, personality, and what led them to this point)\n")
	b.WriteString("   - Key personality traits\n\n")
	b.WriteString(fmt.Sprintf("2. **Story Storyboard**: Create a high-level outline of what will happen across all %d days:\n", days))
	b.WriteString("   - Major plot points and events for each day\n")
	b.WriteString("   - Character development arcs\n")
	b.WriteString("   - Key conflicts and resolutions\n")
	b.WriteString("   - How the story builds and progresses day by day\n")
	b.WriteString("   - Emotional beats and turning points\n\n")
	b.WriteString("Format this as a structured plan that we'll follow when writing the full story. ")
	b.WriteString(fmt.Sprintf("Be specific about what happens on which day, using actual dates starting from %s.", startStr))

	return b.String()
}

// DayPrompt asks for the full narrative of one story day, referencing the
// storyboard carried in the shared transcript.
func DayPrompt(day int, date time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Now write the full narrative for Day %d (%s) following the storyboard plan.\n\n", day, FormatDayDate(date)))
	b.WriteString("Include:\n")
	b.WriteString("- Rich, detailed prose with character thoughts and emotions\n")
	b.WriteString("- Specific times and activities throughout the day (morning, afternoon, evening, night)\n")
	b.WriteString("- Dialogue that reveals character personalities\n")
	b.WriteString("- Sensory details and atmospheric descriptions\n")
	b.WriteString("- How events align with the character backstories and the overall storyboard\n\n")
	b.WriteString("Make this engaging literary fiction, not just a summary. Write it as a complete narrative section.")

	return b.String()
}
