package useragent

import (
	"regexp"
	"strings"
)

// Browser represents browser information
type Browser struct {
	Name    string
	Version string
}

// Label returns the browser as a display string, "Name Version" when a
// version was extracted and the bare name otherwise.
func (b Browser) Label() string {
	if b.Version == "" {
		return b.Name
	}
	return b.Name + " " + b.Version
}

// browserPattern defines a detection rule for one browser family.
type browserPattern struct {
	name     string
	keywords []string
	excludes []string
	regex    *regexp.Regexp
}

// Extract version from a user agent string using a regex
func extractVersion(ua string, regex *regexp.Regexp) string {
	matches := regex.FindStringSubmatch(ua)
	if len(matches) > 1 {
		version := matches[1]
		// Limit version length to avoid excessively long versions
		if len(version) > 20 {
			version = version[:20]
		}
		return version
	}
	return ""
}

// matchPattern checks if the UA string matches a browser pattern
func matchPattern(ua string, pattern browserPattern) bool {
	for _, keyword := range pattern.keywords {
		if !strings.Contains(ua, keyword) {
			return false
		}
	}
	for _, exclude := range pattern.excludes {
		if strings.Contains(ua, exclude) {
			return false
		}
	}
	return true
}

// Browser detection patterns in checking order. The order is significant and
// deliberately preserved: Chrome is tested before the Opera token but excludes
// agents carrying "opr/" or "edg/", since both Opera and Edge embed a Chrome
// token in their UA strings.
var browserPatterns = []browserPattern{
	{
		name:     BrowserEdge,
		keywords: []string{"edg/"},
		regex:    regexp.MustCompile(`(?:edge|edg)[/ ]([\d.]+)`),
	},
	{
		name:     BrowserEdge,
		keywords: []string{"edge/"},
		regex:    regexp.MustCompile(`(?:edge|edg)[/ ]([\d.]+)`),
	},
	{
		name:     BrowserChrome,
		keywords: []string{"chrome/"},
		excludes: []string{"opr/", "edg/"},
		regex:    regexp.MustCompile(`chrome[/ ]([\d.]+)`),
	},
	{
		name:     BrowserOpera,
		keywords: []string{"opr/"},
		regex:    regexp.MustCompile(`opr[/ ]([\d.]+)`),
	},
	{
		name:     BrowserFirefox,
		keywords: []string{"firefox/"},
		regex:    regexp.MustCompile(`firefox[/ ]([\d.]+)`),
	},
	{
		name:     BrowserSafari,
		keywords: []string{"version/", "safari/"},
		excludes: []string{"chrome/"},
		regex:    regexp.MustCompile(`version[/ ]([\d.]+)`),
	},
}

// ParseBrowser parses the browser information from a lower-cased user agent
// string. It never fails; unrecognized agents map to BrowserUnknown with an
// empty version.
func ParseBrowser(lowerUA string) Browser {
	if lowerUA == "" {
		return Browser{Name: BrowserUnknown}
	}

	for _, pattern := range browserPatterns {
		if matchPattern(lowerUA, pattern) {
			return Browser{
				Name:    pattern.name,
				Version: extractVersion(lowerUA, pattern.regex),
			}
		}
	}

	return Browser{Name: BrowserUnknown}
}
