package useragent

import (
	"regexp"
	"strings"
)

// Version token extraction patterns compiled once at package init.
var (
	ntVersionRegex      = regexp.MustCompile(`windows nt (\d+)\.(\d+)`)
	androidVersionRegex = regexp.MustCompile(`android[/ ](\d+(?:[._]\d+)*)`)
	macVersionRegex     = regexp.MustCompile(`mac os x (\d+(?:[._]\d+)+)`)
)

// ntReleaseNames maps legacy Windows NT kernel versions to their marketed
// release names. NT 10.0 is intentionally absent: it covers both Windows 10
// and Windows 11 and is handled as an ambiguous case.
var ntReleaseNames = map[string]string{
	"6.1": "Windows 7",
	"6.2": "Windows 8",
	"6.3": "Windows 8.1",
}

// ntAmbiguousDetail is reported for NT 10.0 agents, where the kernel version
// alone cannot distinguish Windows 10 from Windows 11.
const ntAmbiguousDetail = "Windows 10 or Windows 11 (NT 10.0 is ambiguous)"

// excerptLen bounds the last-resort raw excerpt returned for agents that
// match none of the known version tokens.
const excerptLen = 60

// ParseOSDetail extracts a human-readable OS version description from a user
// agent string. It tries, in order: the Windows NT token mapped through the
// historical release table, the Android version digits, and the underscore
// delimited Mac OS X version rewritten to dot notation. When nothing matches
// it returns a truncated excerpt of the raw string, and OSUnknown only for
// empty input.
func ParseOSDetail(ua string) string {
	if ua == "" {
		return OSUnknown
	}

	lowerUA := strings.ToLower(ua)

	if m := ntVersionRegex.FindStringSubmatch(lowerUA); m != nil {
		nt := m[1] + "." + m[2]
		if nt == "10.0" {
			return ntAmbiguousDetail
		}
		if name, ok := ntReleaseNames[nt]; ok {
			return name
		}
		return "Windows (NT " + nt + ")"
	}

	if m := androidVersionRegex.FindStringSubmatch(lowerUA); m != nil {
		return "Android " + strings.ReplaceAll(m[1], "_", ".")
	}

	if m := macVersionRegex.FindStringSubmatch(lowerUA); m != nil {
		return "macOS " + strings.ReplaceAll(m[1], "_", ".")
	}

	return excerpt(ua, excerptLen)
}

// excerpt truncates s to at most n bytes without splitting a multi-byte rune.
func excerpt(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n]
}
