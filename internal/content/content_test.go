package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCatalogIsTotal(t *testing.T) {
	for id := SectionID(0); id < SectionCount; id++ {
		sec, ok := Lookup(id)
		if !ok {
			t.Fatalf("Lookup(%d) missing", id)
		}
		if len(sec.Blocks) == 0 {
			t.Errorf("section %q has no blocks", id)
		}
		if id.Label() == "" {
			t.Errorf("section %d has no label", id)
		}
	}
}

func TestSectionOrder(t *testing.T) {
	want := []string{
		"Overview",
		"Introduction & Objectives",
		"Key Risk Factors and Predictors",
		"Feature-Level Insights",
		"Predictive Modeling Performance",
		"Urban vs. Rural Patterns",
		"Segmentation of Risk Groups",
		"Business Insights",
		"Conclusion",
		"Sources",
	}
	var got []string
	for _, s := range Sections() {
		got = append(got, s.Label())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("section labels mismatch (-want +got):\n%s", diff)
	}
}

func TestSlugRoundTrip(t *testing.T) {
	seen := make(map[string]SectionID)
	for id := SectionID(0); id < SectionCount; id++ {
		slug := id.Slug()
		if other, dup := seen[slug]; dup {
			t.Fatalf("slug %q shared by %v and %v", slug, other, id)
		}
		seen[slug] = id

		got, err := ParseSlug(slug)
		if err != nil {
			t.Fatalf("ParseSlug(%q): %v", slug, err)
		}
		if got != id {
			t.Errorf("ParseSlug(%q) = %v, want %v", slug, got, id)
		}
	}
}

func TestParseSlugUnknown(t *testing.T) {
	_, err := ParseSlug("nope")
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Overview", "overview"},
		{"Introduction & Objectives", "introduction-objectives"},
		{"Urban vs. Rural Patterns", "urban-vs-rural-patterns"},
		{"Cluster A — High-Risk, High-Support", "cluster-a-high-risk-high-support"},
		{"  Family History  ", "family-history"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInvalidSectionID(t *testing.T) {
	bad := SectionCount + 3
	if bad.Valid() {
		t.Fatal("expected out-of-range id to be invalid")
	}
	if bad.Label() != "" {
		t.Errorf("expected empty label, got %q", bad.Label())
	}
	if _, ok := Lookup(bad); ok {
		t.Error("expected Lookup to fail for out-of-range id")
	}
	if _, ok := Lookup(-1); ok {
		t.Error("expected Lookup to fail for negative id")
	}
}

func TestOverviewMetrics(t *testing.T) {
	sec, _ := Lookup(Overview)
	var row MetricRow
	for _, b := range sec.Blocks {
		if r, ok := b.(MetricRow); ok {
			row = r
		}
	}
	want := []Metric{
		{Label: "AUC (Risk Classifier)", Value: "~0.85"},
		{Label: "Precision", Value: "~0.76"},
		{Label: "Recall", Value: "~0.83"},
		{Label: "Text Classifier Accuracy", Value: "~70%"},
	}
	if diff := cmp.Diff(want, row.Metrics); diff != "" {
		t.Errorf("overview metrics mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupReturnsCopies(t *testing.T) {
	sec, _ := Lookup(Overview)
	for _, b := range sec.Blocks {
		if r, ok := b.(MetricRow); ok {
			r.Metrics[0].Value = "tampered"
		}
	}
	sec.Blocks[0] = Paragraph{Markdown: "tampered"}

	again, _ := Lookup(Overview)
	if h, ok := again.Blocks[0].(Heading); !ok || h.Text != "Project at a Glance" {
		t.Errorf("catalog block mutated: %#v", again.Blocks[0])
	}
	for _, b := range again.Blocks {
		if r, ok := b.(MetricRow); ok && r.Metrics[0].Value != "~0.85" {
			t.Errorf("catalog metric mutated: %q", r.Metrics[0].Value)
		}
	}
}

func TestPanelKeysUniqueWithinSection(t *testing.T) {
	for _, sec := range Sections() {
		seen := make(map[string]bool)
		for _, p := range sec.Panels() {
			if seen[p.Key()] {
				t.Errorf("section %q: duplicate panel key %q", sec.Label(), p.Key())
			}
			seen[p.Key()] = true
		}
	}
}

func TestFeatureInsightsPanels(t *testing.T) {
	sec, _ := Lookup(FeatureInsights)
	var titles []string
	for _, p := range sec.Panels() {
		titles = append(titles, p.Title)
	}
	want := []string{
		"Countries associated with higher risk",
		"Countries associated with lower risk",
		"Social Weakness",
		"Growing Stress",
		"Family History",
		"Occupation",
		"Care Options Awareness",
	}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("panel titles mismatch (-want +got):\n%s", diff)
	}

	for _, p := range sec.Panels() {
		if p.Key() != "family-history" {
			continue
		}
		if !strings.Contains(p.Markdown, "+0.061") || !strings.Contains(p.Markdown, "−0.069") {
			t.Errorf("family history body missing effects: %q", p.Markdown)
		}
	}
}

func TestSegmentationHasSixPersonas(t *testing.T) {
	sec, _ := Lookup(RiskSegmentation)
	if n := len(sec.Panels()); n != 6 {
		t.Fatalf("expected 6 cluster panels, got %d", n)
	}
}

func TestMembers(t *testing.T) {
	got := Members()
	if len(got) != 4 {
		t.Fatalf("expected 4 members, got %d", len(got))
	}
	got[0].Name = "changed"
	if Members()[0].Name != "Vished" {
		t.Error("Members returned shared backing array")
	}
}
