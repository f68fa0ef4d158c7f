package genbridge

const (
	// RequestSchema describes the JSON document expected on standard input.
	RequestSchema = `{
  "type": "object",
  "properties": {
    "prompt": {"type": "string"},
    "max_tokens": {"type": "integer", "minimum": 1},
    "url": {"type": "string"},
    "api_key": {"type": "string"},
    "model": {"type": "string"}
  },
  "required": ["prompt", "url", "api_key"]
}`

	// ResultSchema describes the JSON document written to standard output.
	ResultSchema = `{
  "type": "object",
  "properties": {
    "text": {"type": "string"},
    "usage_tokens": {"type": "integer", "minimum": 0}
  },
  "required": ["text", "usage_tokens"]
}`
)
