package common

import (
	"net/url"
	"regexp"
	"strings"
)

// markdownLinkPattern extracts the target of [text](url) copy-pastes.
var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste
// issues: surrounding whitespace, markdown link syntax, and stray
// punctuation on either edge.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	cleaned = strings.TrimRight(cleaned, `,.)}]"'>;`)
	cleaned = strings.TrimLeft(cleaned, `([<"'`)

	return strings.TrimSpace(cleaned)
}

// SanitizeAndValidateURLs sanitizes every URL and splits the input into
// valid and invalid entries. Invalid URLs are those that fail validation
// even after sanitization.
func SanitizeAndValidateURLs(urls []string) (sanitized []string, invalid []string) {
	sanitized = make([]string, 0, len(urls))

	for _, rawURL := range urls {
		cleaned := SanitizeURL(rawURL)
		if !isValidURL(cleaned) {
			invalid = append(invalid, rawURL)
			continue
		}
		sanitized = append(sanitized, cleaned)
	}

	return sanitized, invalid
}

func isValidURL(u string) bool {
	if u == "" || strings.Contains(u, " ") {
		return false
	}

	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	// Hosts with bracket or quote characters indicate a malformed paste.
	if strings.ContainsAny(parsed.Host, `{}[]<>"'`) {
		return false
	}
	return true
}
