package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the lowercase HTTP header names that carry
// credentials. The request logging middleware reads it too.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// todoTextFields hold text a person typed into a todo. They are matched
// case-insensitively, so both slog.String("owner", ...) and the Owner field
// of a todo.Todo logged with slog.Any are redacted.
var todoTextFields = []string{"owner", "body"}

// credentialFields are redacted by exact attribute name.
var credentialFields = []string{"password", "secret", "token"}

var (
	bearerPattern       = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	jwtPattern          = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// fieldNameFold matches any of names ignoring case.
func fieldNameFold(names ...string) masq.Censor {
	return func(fieldName string, _ any, _ string) bool {
		for _, n := range names {
			if strings.EqualFold(fieldName, n) {
				return true
			}
		}
		return false
	}
}

// newRedactAttr returns the masq ReplaceAttr used by every handler New builds.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := []masq.Option{
		masq.WithCensor(fieldNameFold(todoTextFields...)),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	}
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range credentialFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	return masq.New(opts...)
}
