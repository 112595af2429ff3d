package run

import "strings"

// redactKeys are environment variable names whose values are masked
// when an assembled command is logged.
var redactKeys = []string{
	"GH_TOKEN",
	"GITHUB_TOKEN",
	"GITHUB_AI_PAT_TOKEN",
	"PASSWORD",
	"SECRET",
}

// Redact returns a copy of the argument vector safe for logging: the
// values of known secret environment variables are masked. The vector
// handed to the runtime is never modified.
func Redact(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = redactToken(arg)
	}
	return out
}

func redactToken(tok string) string {
	for _, key := range redactKeys {
		marker := key + "="
		if i := strings.Index(tok, marker); i >= 0 {
			return tok[:i] + marker + "REDACTED"
		}
	}
	return tok
}
