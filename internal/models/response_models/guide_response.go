package response_models

// GuideSource records where the guide text came from, for observability.
type GuideSource string

const (
	SourceAIGenerated    GuideSource = "ai_generated"
	SourceStaticFallback GuideSource = "static_fallback"
)

// GuideResult is the final guide text plus its provenance. Immutable once
// constructed; the presentation layer only reads it.
type GuideResult struct {
	Text   string      `json:"text"`
	Source GuideSource `json:"source"`
	Model  string      `json:"model,omitempty"`
}
