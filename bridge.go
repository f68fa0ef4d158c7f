package genbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"
)

// Request is the JSON document the surrounding system pipes to standard input.
type Request struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens,omitempty"`
	URL       string `json:"url"`
	APIKey    string `json:"api_key"`
	Model     string `json:"model,omitempty"`
}

// Bridge runs single read-generate-write invocations. Each invocation builds
// its own client, so no state crosses invocations.
type Bridge struct {
	logger     zerolog.Logger
	clientOpts []Option
}

// NewBridge creates a bridge whose clients log through logger and are
// configured with the given options.
func NewBridge(logger zerolog.Logger, opts ...Option) *Bridge {
	return &Bridge{logger: logger, clientOpts: opts}
}

// Run reads one Request from in, performs one generation call, and writes the
// Result to out. Output is all-or-nothing: on any failure nothing has been
// written to out.
func (b *Bridge) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	logger := b.logger.With().Str("invocation_id", uuid.NewString()).Logger()

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	req, err := ParseRequest(data)
	if err != nil {
		return err
	}

	opts := append([]Option{WithLogger(logger)}, b.clientOpts...)

	client := New(ClientConfig{URL: req.URL, APIKey: req.APIKey, Model: req.Model}, opts...)
	defer client.Close()

	res, err := client.Generate(ctx, req.Prompt, req.MaxTokens)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	return writeResult(out, res)
}

// ParseRequest validates data against RequestSchema and decodes it.
func ParseRequest(data []byte) (Request, error) {
	if err := validateSchema(RequestSchema, data); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return req, nil
}

// writeResult serializes res, checks it against ResultSchema, and emits it
// followed by a newline.
func writeResult(out io.Writer, res Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if err := validateSchema(ResultSchema, data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if _, err := out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}

func validateSchema(schema string, data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, e.String())
	}

	return fmt.Errorf("%s", strings.Join(errs, "; "))
}
