package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQuickstartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quickstart",
		Short: "Show examples and usage instructions",
		Run: func(_ *cobra.Command, _ []string) {
			printQuickstart()
		},
	}
}

func printQuickstart() {
	fmt.Println(`Quickstart Guide for genbridge

1. Literal API key
   Pipe a request document to stdin; the result arrives on stdout.

   echo '{
     "prompt": "Write a haiku about bridges",
     "url": "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent?key=GEMINI_API_KEY",
     "api_key": "my-secret-key"
   }' | genbridge

2. API key from the environment
   The api_key field can name an environment variable instead.

   export GEMINI_KEY=my-secret-key
   echo '{
     "prompt": "Write a haiku about bridges",
     "url": "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent?key=GEMINI_API_KEY",
     "api_key": "API_KEY_ENV=GEMINI_KEY"
   }' | genbridge

3. Optional fields
   max_tokens (default 8192) bounds the generated output; model
   (default gemini-pro) is recorded in the diagnostics.

   echo '{"prompt": "...", "url": "...", "api_key": "...", "max_tokens": 256}' | genbridge

4. Diagnostics
   Logs go to stderr only. Use --debug to see the request and response
   bodies, and --env-file to load credentials from a dotenv file.

   genbridge --debug --env-file=.env.local < request.json > result.json

Exit code is 0 on success and 1 on any failure; on failure nothing is
written to stdout.

See README.md for more details.`)
}
