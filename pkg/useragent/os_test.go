package useragent_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/clientenv/pkg/useragent"

	"github.com/stretchr/testify/assert"
)

func TestParseOS(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{
			name:     "Windows 10",
			ua:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36",
			expected: useragent.OSWindows,
		},
		{
			name:     "Windows 7",
			ua:       "Mozilla/5.0 (Windows NT 6.1; WOW64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/109.0.0.0 Safari/537.36",
			expected: useragent.OSWindows,
		},
		{
			name:     "macOS",
			ua:       "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36",
			expected: useragent.OSMacOS,
		},
		{
			name:     "Android before Linux despite embedded Linux token",
			ua:       "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Mobile Safari/537.36",
			expected: useragent.OSAndroid,
		},
		{
			name:     "Linux",
			ua:       "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/118.0",
			expected: useragent.OSLinux,
		},
		{
			name:     "unrecognized agent",
			ua:       "SomeCustomAgent/1.0",
			expected: useragent.OSUnknown,
		},
		{
			name:     "empty UA",
			ua:       "",
			expected: useragent.OSUnknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := useragent.ParseOS(strings.ToLower(tc.ua))
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestFirstToken(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{
			name:     "full agent",
			ua:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
			expected: "Mozilla/5.0",
		},
		{
			name:     "leading whitespace",
			ua:       "   curl/8.4.0",
			expected: "curl/8.4.0",
		},
		{
			name:     "empty",
			ua:       "",
			expected: "",
		},
		{
			name:     "whitespace only",
			ua:       "   \t ",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, useragent.FirstToken(tc.ua))
		})
	}
}
