package useragent

import (
	"strings"
)

// keywordSet optimizes keyword lookups using map structure for O(1) access
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// OS detection keyword sets. Android appears before Linux because Android UA
// strings embed a Linux token.
var (
	windowsKeywords = newKeywordSet("windows nt")
	macOSKeywords   = newKeywordSet("macintosh", "mac os x")
	androidKeywords = newKeywordSet("android")
	linuxKeywords   = newKeywordSet("linux", "x11")
)

// ParseOS identifies the operating system from a lower-cased user agent
// string. Matching follows a fixed priority order: Windows, macOS, Android,
// Linux. It never fails; anything unrecognized maps to OSUnknown.
func ParseOS(lowerUA string) string {
	if lowerUA == "" {
		return OSUnknown
	}

	if windowsKeywords.contains(lowerUA) {
		return OSWindows
	}

	if macOSKeywords.contains(lowerUA) {
		return OSMacOS
	}

	if androidKeywords.contains(lowerUA) {
		return OSAndroid
	}

	if linuxKeywords.contains(lowerUA) {
		return OSLinux
	}

	return OSUnknown
}

// FirstToken returns the first whitespace-delimited token of a user agent
// string. It is used to build descriptive labels for unrecognized agents.
func FirstToken(ua string) string {
	fields := strings.Fields(ua)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
