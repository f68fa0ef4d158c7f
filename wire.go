package genbridge

// Wire types for the generateContent endpoint. Only the fields this client
// sends and reads are modeled.

type apiRequest struct {
	Contents         []apiContent     `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type apiContent struct {
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text string `json:"text,omitempty"`
}

type generationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens"`
}

type apiResponse struct {
	Candidates    []apiCandidate `json:"candidates"`
	UsageMetadata *apiUsageMeta  `json:"usageMetadata,omitempty"`
}

type apiCandidate struct {
	Content apiContent `json:"content"`
}

type apiUsageMeta struct {
	// Pointer distinguishes an explicit zero from an absent field.
	TotalTokenCount *int `json:"totalTokenCount,omitempty"`
}
