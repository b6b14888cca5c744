package content

import (
	"errors"
	"fmt"
)

// SectionID identifies one of the fixed, ordered report sections.
type SectionID int

const (
	Overview SectionID = iota
	IntroductionObjectives
	KeyRiskFactors
	FeatureInsights
	ModelPerformance
	UrbanRural
	RiskSegmentation
	BusinessInsights
	Conclusion
	Sources

	// SectionCount is the number of sections. Keep it last.
	SectionCount
)

// NoSection is outside the enumeration. Selecting it renders the
// not-found notice.
const NoSection SectionID = -1

// ErrUnknownSection is returned when a slug or ID names no section.
var ErrUnknownSection = errors.New("unknown section")

var labels = [SectionCount]string{
	Overview:               "Overview",
	IntroductionObjectives: "Introduction & Objectives",
	KeyRiskFactors:         "Key Risk Factors and Predictors",
	FeatureInsights:        "Feature-Level Insights",
	ModelPerformance:       "Predictive Modeling Performance",
	UrbanRural:             "Urban vs. Rural Patterns",
	RiskSegmentation:       "Segmentation of Risk Groups",
	BusinessInsights:       "Business Insights",
	Conclusion:             "Conclusion",
	Sources:                "Sources",
}

// Valid reports whether id is a member of the enumeration.
func (id SectionID) Valid() bool {
	return id >= 0 && id < SectionCount
}

// Label is the navigation label, e.g. "Overview".
func (id SectionID) Label() string {
	if !id.Valid() {
		return ""
	}
	return labels[id]
}

// Slug is the URL key for the section.
func (id SectionID) Slug() string {
	return Slugify(id.Label())
}

func (id SectionID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("SectionID(%d)", int(id))
	}
	return labels[id]
}

// ParseSlug resolves a URL key to its section.
func ParseSlug(slug string) (SectionID, error) {
	for id := SectionID(0); id < SectionCount; id++ {
		if id.Slug() == slug {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSection, slug)
}

// BlockKind tags the concrete type of a Block.
type BlockKind string

const (
	KindHeading   BlockKind = "heading"
	KindParagraph BlockKind = "paragraph"
	KindMetrics   BlockKind = "metrics"
	KindPanel     BlockKind = "panel"
)

// Block is one renderable unit of a section. The set of implementations
// is closed to this package.
type Block interface {
	Kind() BlockKind
	block()
}

// Heading is a header (Level 1) or subheader (Level 2).
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Paragraph is authored Markdown.
type Paragraph struct {
	Markdown string `json:"markdown"`
}

// Metric is a single label/value display. Values are literal strings.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MetricRow is a horizontal row of metrics.
type MetricRow struct {
	Metrics []Metric `json:"metrics"`
}

// Panel is a collapsible block. Only Title is visible until expanded.
type Panel struct {
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
}

// Key identifies the panel within its section.
func (p Panel) Key() string { return Slugify(p.Title) }

func (Heading) Kind() BlockKind   { return KindHeading }
func (Paragraph) Kind() BlockKind { return KindParagraph }
func (MetricRow) Kind() BlockKind { return KindMetrics }
func (Panel) Kind() BlockKind     { return KindPanel }

func (Heading) block()   {}
func (Paragraph) block() {}
func (MetricRow) block() {}
func (Panel) block()     {}

// Section is a named unit of static content.
type Section struct {
	ID     SectionID
	Blocks []Block
}

// Label returns the section's navigation label.
func (s Section) Label() string { return s.ID.Label() }

// Panels returns the collapsible panels of the section in order.
func (s Section) Panels() []Panel {
	var out []Panel
	for _, b := range s.Blocks {
		if p, ok := b.(Panel); ok {
			out = append(out, p)
		}
	}
	return out
}

// HasPanel reports whether key names one of the section's panels.
func (s Section) HasPanel(key string) bool {
	for _, p := range s.Panels() {
		if p.Key() == key {
			return true
		}
	}
	return false
}
