package content

// Page-level strings shown on every render.
const (
	PageTitle    = "Data-Driven Mental Health Risk Analysis"
	PageIcon     = "🧠"
	SidebarTitle = "Navigate"
	ControlLabel = "Go to:"
)

// Member is one entry of the sidebar attribution block.
type Member struct {
	Name string `json:"name"`
	Roll string `json:"roll"`
}

// AttributionTitle heads the sidebar attribution block.
const AttributionTitle = "Group Members (Group 1)"

var members = []Member{
	{Name: "Vished", Roll: "MBA/0075/61"},
	{Name: "Abhiram Manoj", Roll: "MBA/0084/61"},
	{Name: "Harshvardhan Sharma", Roll: "MBA/0399/61"},
	{Name: "Anirudh Das", Roll: "MBA/0413/61"},
}

// Members returns the attribution list in display order.
func Members() []Member {
	out := make([]Member, len(members))
	copy(out, members)
	return out
}

// catalog maps every SectionID to its content. The array length is tied
// to SectionCount so a new ID without content leaves a zero entry, which
// TestCatalogIsTotal catches.
var catalog = [SectionCount][]Block{
	Overview: {
		Heading{Level: 2, Text: "Project at a Glance"},
		MetricRow{Metrics: []Metric{
			{Label: "AUC (Risk Classifier)", Value: "~0.85"},
			{Label: "Precision", Value: "~0.76"},
			{Label: "Recall", Value: "~0.83"},
			{Label: "Text Classifier Accuracy", Value: "~70%"},
		}},
		Paragraph{Markdown: `This app summarizes the team's analysis of mental health risk drivers and modeling results.
Use the left navigation to jump between sections. Key outputs include: major predictors,
feature-level effects, model performance, geography patterns, risk segment personas, and
actionable business recommendations.`},
	},

	IntroductionObjectives: {
		Heading{Level: 1, Text: "Introduction & Objectives"},
		Paragraph{Markdown: `In today’s data-rich environment, demographic, geographic, and lifestyle information can be used
to predict mental health risks and enable proactive interventions. This project integrates two
advanced RNN models to build a decision-support system. Our objectives:

- Identify key risk factors and forecast the likelihood of individuals reporting mental health symptoms.
- Compare patterns across regions (as a proxy for urban vs. rural dynamics).
- Discover risk-based sub-groups via clustering.
- Diagnose mental health disorders from textual statements using an LSTM classifier.

Stakeholders (healthcare providers, employers, educators, NGOs) can use these insights to target
high-risk segments and allocate resources more effectively.`},
	},

	KeyRiskFactors: {
		Heading{Level: 1, Text: "Key Risk Factors and Predictors"},
		Paragraph{Markdown: `**Dominant predictors:**
- **Family history of mental illness** — strongest demographic risk factor; associated with higher risk.
- **Access/awareness of care options** — large differences by segment; lower awareness clustered with higher risk.
- **Employment context & self-employment** — self-employed individuals showed elevated risk (stress, less employer support).
- **Gender patterns** — differing reporting/risk patterns across genders in the dataset.
- **Lifestyle factors** — chronic stress and negative habit changes increased risk; supportive work-life habits were protective.`},
	},

	FeatureInsights: {
		Heading{Level: 1, Text: "Feature-Level Insights: Factors Driving Predictions"},
		Paragraph{Markdown: "Specific values that push predictions up or down:"},
		Panel{Title: "Countries associated with higher risk", Markdown: `- New Zealand (+0.27)
- Denmark (+0.22)
- Netherlands (+0.14)
- South Africa (+0.12)
- United Kingdom (+0.10)`},
		Panel{Title: "Countries associated with lower risk", Markdown: `- France (−0.54)
- Singapore (−0.34)
- Italy (−0.26)
- Brazil (−0.11)
- Switzerland (−0.08)`},
		Panel{Title: "Social Weakness", Markdown: `- "Yes" slightly increased predicted risk (+0.016).
- "No" or "Maybe" pushed risk down marginally.`},
		Panel{Title: "Growing Stress", Markdown: `- "No" pushed predictions up (+0.009) in this dataset (interaction with other strong risk factors).
- "Maybe" showed the strongest downward effect (−0.008).`},
		Panel{Title: "Family History", Markdown: `- "Yes" strongly increased predicted risk (+0.061).
- "No" decreased predicted risk (−0.069).`},
		Panel{Title: "Occupation", Markdown: `- Business roles had higher relative risk (+0.025).
- Corporate roles had the strongest downward pull (−0.066).`},
		Panel{Title: "Care Options Awareness", Markdown: `- Answering "Yes" increased predicted risk (+0.137) — people already at risk may be more aware/engaged.
- "Not sure" (−0.068) and "No" (−0.033) pulled risk down.`},
	},

	ModelPerformance: {
		Heading{Level: 1, Text: "Predictive Modeling Performance"},
		Paragraph{Markdown: `**Multitask RNN (structured data):**
- Classification head: AUC ~0.85, Precision ~0.76, Recall ~0.83.
- Regression head (risk severity score): mean error < 2%.

**Text RNN (LSTM) classifier:**
- ~70% test accuracy across categories (e.g., Anxiety, Depression, Stress, Bipolar, Suicidal, Normal).
- Very strong on "Normal" (94% precision, 86% recall); some confusion among closely related severe categories.

*Interpretation:* Models flag a large majority of at-risk individuals while keeping false positives reasonable, and can
categorize symptoms from language with moderate accuracy (decision-support, not diagnosis).`},
	},

	UrbanRural: {
		Heading{Level: 1, Text: "Urban vs. Rural Patterns (via Geography Proxies)"},
		Paragraph{Markdown: `While the dataset did not explicitly label urban vs. rural, **country of residence** was the most significant clustering variable.
Patterns suggest:

- Regions with limited mental health infrastructure showed higher risk and lower awareness of care options.
- Urban/corporate cohorts tended to have more awareness and employer support, correlating with lower risk.
- A high-risk cluster (≈97% predicted probability) featured individuals from a rural-centric country sample with high stress and no employer support.
- Lowest-risk groups included urban tech employees with strong support and awareness.`},
	},

	RiskSegmentation: {
		Heading{Level: 1, Text: "Segmentation of Risk Groups (6 Personas)"},
		Paragraph{Markdown: "Unsupervised clustering revealed six segments with distinct profiles:"},
		Panel{Title: "Cluster A — High-Risk, High-Support",
			Markdown: "~99.5% predicted treatment need; strong family history and symptoms; high awareness/access (e.g., 77% employer options)."},
		Panel{Title: "Cluster B — High-Risk, Low-Support",
			Markdown: "≈95% predicted treatment; many self-employed (~50%) and rural; high stress and social withdrawal; limited care awareness."},
		Panel{Title: "Cluster C — Moderate-Risk, Family-Driven",
			Markdown: "Near-universal family history (≈99%); supportive environments; elevated but proactive risk profile with preventive treatment."},
		Panel{Title: "Cluster D — Chronic Mild Struggles",
			Markdown: "Medium risk; occasional mood swings and some stress; maintain work/social interest; suitable for early wellness programs."},
		Panel{Title: "Cluster E — Low-Risk, Unaware",
			Markdown: "Low expressed symptoms and near-zero treatment seeking; low awareness (‘Not sure’ dominant). Potential under-reporting due to stigma."},
		Panel{Title: "Cluster F — Very Low-Risk, Healthy",
			Markdown: "Minimal risk factors; near-zero predicted risk; supportive cultures or younger cohorts; general wellness maintenance."},
	},

	BusinessInsights: {
		Heading{Level: 1, Text: "Business Insights"},
		Paragraph{Markdown: `**Actionable recommendations:**
- **Targeted interventions:** Outreach for self-employed workers and low-awareness regions (e.g., Cluster B).
- **Workplace policies:** Expand EAPs, normalize mental health discussions, encourage early help-seeking.
- **Preventive focus:** Screen and monitor individuals with family predisposition (Cluster C).
- **Urban–rural allocation:** Invest in rural tele-mental health, primary care training, and anti-stigma programs.
- **Data-driven monitoring:** Build dashboards to track cohort-level risk and sentiment trends for proactive action.`},
	},

	Conclusion: {
		Heading{Level: 1, Text: "Conclusion"},
		Paragraph{Markdown: `Integrating AI on multimodal data (surveys + text) offers a comprehensive view of mental health risk. We identified
key drivers, validated predictive performance, and segmented the population into meaningful groups for targeted action.
The goal is to move from reactive to proactive support — improving well-being while reducing costs (absenteeism,
productivity loss, healthcare spend).`},
	},

	Sources: {
		Heading{Level: 1, Text: "Sources"},
		Paragraph{Markdown: `- https://www.kaggle.com/datasets/bhavikjikadara/mental-health-dataset?resource=download
- https://www.kaggle.com/datasets/suchintikasarkar/sentiment-analysis-for-mental-health/data`},
	},
}

// Lookup returns the section for id. The returned blocks are copies.
func Lookup(id SectionID) (Section, bool) {
	if !id.Valid() {
		return Section{}, false
	}
	src := catalog[id]
	blocks := make([]Block, len(src))
	for i, b := range src {
		blocks[i] = cloneBlock(b)
	}
	return Section{ID: id, Blocks: blocks}, true
}

// Sections returns every section in navigation order.
func Sections() []Section {
	out := make([]Section, 0, SectionCount)
	for id := SectionID(0); id < SectionCount; id++ {
		s, _ := Lookup(id)
		out = append(out, s)
	}
	return out
}

func cloneBlock(b Block) Block {
	if row, ok := b.(MetricRow); ok {
		metrics := make([]Metric, len(row.Metrics))
		copy(metrics, row.Metrics)
		return MetricRow{Metrics: metrics}
	}
	return b
}
