package gateway

import (
	"fmt"
	"strings"
)

// Option is one selectable answer for a question. Several options may
// share a canonical Value.
type Option struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Display string `json:"display"` // short form used when echoing a stored answer
}

// Question describes a gateway question as presented to the user.
type Question struct {
	ID      QuestionID `json:"id"`
	Phase   Phase      `json:"phase"`
	Label   string     `json:"label"`
	Prompt  string     `json:"prompt"`
	Help    string     `json:"help"`
	Options []Option   `json:"options"`
}

var catalog = []Question{
	{
		ID:     QuestionAssetType,
		Phase:  PhaseClassification,
		Label:  "Asset Type",
		Prompt: "What type of technology solution are you assessing?",
		Help: "Think about what you're primarily evaluating: physical equipment or devices, " +
			"behind-the-scenes infrastructure (servers, networks, cloud platforms), " +
			"software applications people log into, or software used in healthcare or for patients.",
		Options: []Option{
			{Value: AssetComputerisedEquipment, Label: "📱 Equipment/Device", Display: "📱 Equipment/Device"},
			{Value: AssetITInfrastructure, Label: "🌐 IT Infrastructure", Display: "🌐 IT Infrastructure"},
			{Value: AssetITSystem, Label: "💻 Software Application", Display: "💻 Software Application"},
			{Value: AssetHealthSoftware, Label: "🏥 Medical Software", Display: "🏥 Medical Software"},
		},
	},
	{
		ID:     QuestionRegulated,
		Phase:  PhaseRiskCategories,
		Label:  "Regulatory Compliance",
		Prompt: "Does this solution handle regulated pharmaceutical data or processes?",
		Help: "GxP refers to pharmaceutical regulations such as FDA requirements. Choose Yes for drug " +
			"development, testing or manufacturing, clinical trials, quality control or regulatory " +
			"submissions. Choose No for general business use. When in doubt for pharma companies, choose Yes.",
		Options: []Option{
			{Value: AnswerYes, Label: "✅ Yes - Handles regulated pharmaceutical activities", Display: "✅ Regulated"},
			{Value: AnswerNo, Label: "❌ No - General business use only", Display: "❌ General Business"},
		},
	},
	{
		ID:     QuestionAI,
		Phase:  PhaseRiskCategories,
		Label:  "AI Technology",
		Prompt: "Does this solution use artificial intelligence, machine learning, or smart automation?",
		Help: "Choose Yes if it makes decisions or recommendations automatically, learns patterns from " +
			"data, predicts outcomes, adapts over time, or uses chatbots or voice recognition. Choose No " +
			"if it only follows fixed rules, stores and displays data, or leaves every decision to a human.",
		Options: []Option{
			{Value: AnswerYes, Label: "🤖 Yes - Uses AI, machine learning, or smart automation", Display: "🤖 Uses AI"},
			{Value: AnswerNo, Label: "📊 No - Follows fixed rules, no intelligent decisions", Display: "📊 No AI"},
		},
	},
	{
		ID:     QuestionPatientSafety,
		Phase:  PhaseRiskCategories,
		Label:  "Patient Safety",
		Prompt: "Could this solution directly or indirectly affect patient health or safety?",
		Help: "Indirect effects count. Choose Yes if it is used in medical facilities, handles patient " +
			"records, affects medical decisions, manages medical supplies or equipment, or could impact " +
			"patient care if it failed. When in doubt for healthcare environments, choose Yes.",
		Options: []Option{
			{Value: AnswerYes, Label: "🏥 Yes - Could affect patient health or safety", Display: "🏥 Patient Safety"},
			{Value: AnswerNo, Label: "🏢 No - No patient impact", Display: "🏢 No Patient Impact"},
		},
	},
	{
		ID:     QuestionConnectivity,
		Phase:  PhaseContext,
		Label:  "Network Access",
		Prompt: "How is this solution connected to networks?",
		Help: "Think about how people access it: from home, over the internet, by external partners, " +
			"or not at all.",
		Options: []Option{
			{Value: ConnectivityNone, Label: "🔌 Not Connected - Standalone system", Display: "🔌 Not Connected"},
			{Value: ConnectivityInternal, Label: "🏢 Internal Only - Company network only", Display: "🏢 Internal Only"},
			{Value: ConnectivityMultiple, Label: "🌐 Multiple Networks - Company + external access", Display: "🌐 Multiple Networks"},
			{Value: ConnectivityMultiple, Label: "☁️ Cloud-Based - Internet/cloud hosted", Display: "🌐 Multiple Networks"},
		},
	},
	{
		ID:     QuestionBusinessImpact,
		Phase:  PhaseContext,
		Label:  "Business Impact",
		Prompt: "If this solution was completely unavailable, what would be the business impact?",
		Help: "Consider whether customers would be affected, regulatory deadlines missed, revenue lost " +
			"or safety compromised, and whether manual alternatives exist.",
		Options: []Option{
			{Value: ImpactLow, Label: "🟢 Low - Minor inconvenience, work continues", Display: "🟢 Low Impact"},
			{Value: ImpactMedium, Label: "🟡 Medium - Significant delays, but business continues", Display: "🟡 Medium Impact"},
			{Value: ImpactHigh, Label: "🔴 High - Major disruption, customer/safety/regulatory impact", Display: "🔴 High Impact"},
		},
	},
	{
		ID:     QuestionDataEntry,
		Phase:  PhaseContext,
		Label:  "Data Entry",
		Prompt: "Do people enter important regulated data into this solution?",
		Help: "Regulated data entry includes lab results, clinical trial information, manufacturing and " +
			"batch records, and quality control measurements. Choose No if data arrives automatically " +
			"from other systems or is not pharmaceutical or medical data.",
		Options: []Option{
			{Value: AnswerYes, Label: "📝 Yes - People manually enter regulated data", Display: "📝 Manual Data Entry"},
			{Value: AnswerNo, Label: "🤖 No - Automatic data or not regulated data", Display: "🤖 Automatic Data"},
		},
	},
	{
		ID:     QuestionDataProcessing,
		Phase:  PhaseContext,
		Label:  "Data Processing",
		Prompt: "Does this solution automatically calculate, transform, or analyze regulated data?",
		Help: "Automatic processing includes dosage or concentration calculations, compliance reports, " +
			"statistical analysis of test results, format conversion and quality calculations. Choose No " +
			"if it only stores or displays data or humans do all calculations.",
		Options: []Option{
			{Value: AnswerYes, Label: "⚙️ Yes - Automatically processes regulated data", Display: "⚙️ Processes Data"},
			{Value: AnswerNo, Label: "📂 No - Just stores/displays data", Display: "📂 Stores Only"},
		},
	},
}

// Questions returns the full catalog in canonical order.
func Questions() []Question {
	out := make([]Question, len(catalog))
	for i, q := range catalog {
		out[i] = q
		out[i].Options = append([]Option(nil), q.Options...)
	}
	return out
}

// Lookup returns the catalog entry for id.
func Lookup(id QuestionID) (Question, bool) {
	for _, q := range catalog {
		if q.ID == id {
			q.Options = append([]Option(nil), q.Options...)
			return q, true
		}
	}
	return Question{}, false
}

// Label returns the short label for a question, falling back to the id.
func Label(id QuestionID) string {
	if q, ok := Lookup(id); ok {
		return q.Label
	}
	return string(id)
}

// Display formats a stored canonical answer for humans. Unknown questions
// or values are returned unchanged.
func Display(id QuestionID, value string) string {
	q, ok := Lookup(id)
	if !ok {
		return value
	}
	for _, o := range q.Options {
		if o.Value == value {
			return o.Display
		}
	}
	return value
}

// Values returns the distinct canonical tokens accepted for a question.
func (q Question) Values() []string {
	seen := make(map[string]bool, len(q.Options))
	var out []string
	for _, o := range q.Options {
		if !seen[o.Value] {
			seen[o.Value] = true
			out = append(out, o.Value)
		}
	}
	return out
}

// Normalize maps user input for a question to its canonical token. The
// input may be a canonical token, a full option label, or an option's
// short display form; matching ignores case and surrounding space.
func Normalize(id QuestionID, input string) (string, error) {
	q, ok := Lookup(id)
	if !ok {
		return "", fmt.Errorf("unknown question %q", id)
	}

	in := strings.TrimSpace(input)
	if in == "" {
		return "", fmt.Errorf("empty answer for question %s", id)
	}

	for _, o := range q.Options {
		if strings.EqualFold(in, o.Value) {
			return o.Value, nil
		}
	}
	for _, o := range q.Options {
		if strings.EqualFold(in, o.Label) || strings.EqualFold(in, o.Display) {
			return o.Value, nil
		}
	}

	return "", fmt.Errorf("invalid answer %q for question %s: must be one of: %s",
		input, id, strings.Join(q.Values(), ", "))
}
