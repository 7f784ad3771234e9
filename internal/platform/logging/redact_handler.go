package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, in lower case, the request headers whose values
// are never logged. middleware.RedactHeaders reads the same set.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// Attribute keys redacted wherever they appear, including the entry service
// OAuth2 credentials.
var (
	sensitiveKeys     = []string{"password", "secret", "token", "client_secret", "ClientSecret"}
	sensitivePrefixes = []string{"secret_", "api_key", "access_token"}
)

// Values redacted under any key. JWT segments need 10+ characters so dotted
// version strings and cost codes are left alone.
var sensitiveValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// redactAttr is the handler's ReplaceAttr.
func redactAttr() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, k := range sensitiveKeys {
		opts = append(opts, masq.WithFieldName(k))
	}
	for _, p := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(p))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
