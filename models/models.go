package models

// GenerationRequest is one inbound call to the completion endpoint.
type GenerationRequest struct {
	Query   string `form:"q" json:"query"`
	Dialect string `form:"l" json:"dialect,omitempty"`
}

// GenerationResult is the text written back to the caller. Failed marks a
// result that carries an error placeholder instead of model output.
type GenerationResult struct {
	SQL     string `json:"sql"`
	Dialect string `json:"dialect"`
	Failed  bool   `json:"failed,omitempty"`
}

type DialectInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type DialectsResponse struct {
	Default  string        `json:"default"`
	Dialects []DialectInfo `json:"dialects"`
}
