// Package content holds the lesson text shown around the PWM demonstration.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed lesson.toml
var lessonTOML string

// ErrEmptyLesson is returned when a lesson document lacks required sections.
var ErrEmptyLesson = errors.New("lesson document is incomplete")

// Lesson is the full text of the PWM page.
type Lesson struct {
	Title         string          `toml:"title" json:"title"`
	Subtitle      string          `toml:"subtitle" json:"subtitle"`
	Footer        string          `toml:"footer" json:"footer"`
	Introduction  Introduction    `toml:"introduction" json:"introduction"`
	Demonstration Demonstration   `toml:"demonstration" json:"demonstration"`
	Analogies     []Analogy       `toml:"analogies" json:"analogies"`
	Applications  []Application   `toml:"applications" json:"applications"`
	Comparison    []ComparisonRow `toml:"comparison" json:"comparison"`
	Takeaway      Takeaway        `toml:"takeaway" json:"takeaway"`
	Summary       Summary         `toml:"summary" json:"summary"`
}

type Introduction struct {
	Heading    string   `toml:"heading" json:"heading"`
	Paragraphs []string `toml:"paragraphs" json:"paragraphs"`
	Highlight  string   `toml:"highlight" json:"highlight"`
}

type Demonstration struct {
	Heading string `toml:"heading" json:"heading"`
	Prompt  string `toml:"prompt" json:"prompt"`
}

// Analogy is an everyday situation that behaves like a duty cycle.
type Analogy struct {
	Title   string   `toml:"title" json:"title"`
	Lead    string   `toml:"lead" json:"lead"`
	Points  []string `toml:"points" json:"points"`
	Closing string   `toml:"closing" json:"closing"`
	Tone    string   `toml:"tone" json:"tone"`
}

// Application is a practical use of PWM with an illustration prompt.
type Application struct {
	Title       string `toml:"title" json:"title"`
	Description string `toml:"description" json:"description"`
	ImagePrompt string `toml:"image_prompt" json:"image_prompt"`
	ImageURL    string `toml:"-" json:"image_url,omitempty"`
}

// ComparisonRow is one line of the "how these applications differ" table.
type ComparisonRow struct {
	Application      string `toml:"application" json:"application"`
	Controls         string `toml:"controls" json:"controls"`
	TypicalFrequency string `toml:"typical_frequency" json:"typical_frequency"`
	Considerations   string `toml:"considerations" json:"considerations"`
}

type Takeaway struct {
	Heading string `toml:"heading" json:"heading"`
	Text    string `toml:"text" json:"text"`
}

type Summary struct {
	Points  []string `toml:"points" json:"points"`
	Closing string   `toml:"closing" json:"closing"`
}

// Load decodes the embedded lesson and resolves image URLs against imageBaseURL.
func Load(imageBaseURL string) (*Lesson, error) {
	return Parse(lessonTOML, imageBaseURL)
}

// Parse decodes a lesson document.
func Parse(doc, imageBaseURL string) (*Lesson, error) {
	var lesson Lesson
	md, err := toml.Decode(doc, &lesson)
	if err != nil {
		return nil, fmt.Errorf("failed to decode lesson: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown lesson keys: %v", undecoded)
	}
	if err := lesson.validate(); err != nil {
		return nil, err
	}

	for i := range lesson.Applications {
		lesson.Applications[i].ImageURL = ImageURL(imageBaseURL, lesson.Applications[i].ImagePrompt)
	}
	return &lesson, nil
}

// ImageURL appends the escaped prompt to the image generator base URL.
// An empty base disables images.
func ImageURL(base, prompt string) string {
	if base == "" || prompt == "" {
		return ""
	}
	return base + strings.ReplaceAll(url.QueryEscape(prompt), "+", "%20")
}

func (l *Lesson) validate() error {
	switch {
	case l.Title == "":
		return fmt.Errorf("%w: missing title", ErrEmptyLesson)
	case len(l.Introduction.Paragraphs) == 0:
		return fmt.Errorf("%w: missing introduction", ErrEmptyLesson)
	case len(l.Applications) == 0:
		return fmt.Errorf("%w: missing applications", ErrEmptyLesson)
	case len(l.Summary.Points) == 0:
		return fmt.Errorf("%w: missing summary", ErrEmptyLesson)
	}
	return nil
}
