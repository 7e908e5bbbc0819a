// Package heuristics holds the pure matching functions behind the
// suspicious-link reactor. None of them touch config or I/O; callers pass
// the configured lists in.
package heuristics

import (
	"net/url"
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`https?://[^\s]+`)

// ExtractURLs returns every http(s) URL in text, in order of appearance.
func ExtractURLs(text string) []string {
	return urlPattern.FindAllString(text, -1)
}

// DomainOf returns the lowercase hostname of rawURL, or "" when the URL does
// not parse or has no host. Callers treat "" as "skip this URL".
func DomainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// IsAllowlisted reports whether domain ends with any configured suffix, so a
// suffix matches the domain itself and every subdomain.
func IsAllowlisted(domain string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if suffix != "" && strings.HasSuffix(domain, suffix) {
			return true
		}
	}
	return false
}

// IsSuspiciousDomain reports whether domain contains any configured
// substring anywhere in the hostname.
func IsSuspiciousDomain(domain string, needles []string) bool {
	for _, needle := range needles {
		if needle != "" && strings.Contains(domain, needle) {
			return true
		}
	}
	return false
}

// ContainsSuspiciousKeyword is a case-insensitive substring test of the full
// message text against each configured keyword.
func ContainsSuspiciousKeyword(text string, keywords []string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(lowered, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
