package genbridge

// ClientConfig describes how to reach the upstream generation endpoint.
// URL is an endpoint template that may contain the GEMINI_API_KEY
// placeholder; APIKey may use the API_KEY_ENV=<VAR> indirection. The config
// is immutable once handed to New.
type ClientConfig struct {
	URL    string `json:"url"`
	APIKey string `json:"api_key"`
	Model  string `json:"model,omitempty"`
}
