package models

// ChatMessage pairs a user message with the mentor's response.
//
// LocalID and Pending are client-only: they mark an optimistic entry that
// has not been confirmed by the backend yet.
type ChatMessage struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	Response  string `json:"response"`
	CreatedAt string `json:"created_at"`

	LocalID string `json:"-"`
	Pending bool   `json:"-"`
}

type ChatContext struct {
	CurrentModule *int64 `json:"current_module"`
}

type ChatRequest struct {
	Message string      `json:"message"`
	Context ChatContext `json:"context"`
}

type ReadinessLevel string

const (
	ReadinessHighlyReady      ReadinessLevel = "highly_ready"
	ReadinessReady            ReadinessLevel = "ready"
	ReadinessNeedsImprovement ReadinessLevel = "needs_improvement"
	ReadinessNotReady         ReadinessLevel = "not_ready"
)

func (r ReadinessLevel) Label() string {
	switch r {
	case ReadinessHighlyReady:
		return "Highly Ready"
	case ReadinessReady:
		return "Ready"
	case ReadinessNeedsImprovement:
		return "Needs Improvement"
	case ReadinessNotReady:
		return "Not Ready"
	default:
		return "Unknown"
	}
}

// InvestorScore is computed server-side; all sub-scores are percentages.
type InvestorScore struct {
	ID                     int64          `json:"id,omitempty"`
	EducationScore         float64        `json:"education_score"`
	FinancialLiteracyScore float64        `json:"financial_literacy_score"`
	BusinessModelScore     float64        `json:"business_model_score"`
	SustainabilityScore    float64        `json:"sustainability_score"`
	OverallScore           float64        `json:"overall_score"`
	ReadinessLevel         ReadinessLevel `json:"readiness_level"`
	Strengths              []string       `json:"strengths"`
	Weaknesses             []string       `json:"weaknesses"`
	Recommendations        []string       `json:"recommendations"`
	CalculatedAt           string         `json:"calculated_at,omitempty"`
}
