package genbridge

import "strings"

// EstimateTokens approximates the token count of s by counting
// whitespace-delimited words. It is a coarse proxy used only when the
// upstream response carries no usage metadata.
func EstimateTokens(s string) int {
	return len(strings.Fields(s))
}
