package hints

import (
	"net/http"

	"github.com/dunglas/httpsfv"
)

// Client hint header names as sent by Chromium-based browsers.
const (
	// HeaderBrands carries the low-entropy brand list (structured field list).
	HeaderBrands = "Sec-CH-UA"

	// HeaderPlatform carries the low-entropy platform name (structured field string).
	HeaderPlatform = "Sec-CH-UA-Platform"

	// HeaderPlatformVersion carries the high-entropy platform version. It is
	// only sent after the server advertises it via Accept-CH.
	HeaderPlatformVersion = "Sec-CH-UA-Platform-Version"
)

// Brand is a single entry of the Sec-CH-UA brand list.
type Brand struct {
	Name    string
	Version string
}

// Snapshot holds the structured client identity data extracted from one
// request. Fields are empty when the client did not send the corresponding
// header.
type Snapshot struct {
	Platform        string
	PlatformVersion string
	Brands          []Brand
}

// Empty reports whether the snapshot carries no data at all.
func (s Snapshot) Empty() bool {
	return s.Platform == "" && s.PlatformVersion == "" && len(s.Brands) == 0
}

// FromHeader extracts the low-entropy snapshot from request headers. The
// second return value is false when the client sent no usable hint headers.
func FromHeader(h http.Header) (Snapshot, bool) {
	snap := Snapshot{
		Platform: parseItemString(h.Get(HeaderPlatform)),
		Brands:   parseBrands(h.Get(HeaderBrands)),
	}
	return snap, !snap.Empty()
}

// parseBrands decodes a Sec-CH-UA value, a structured field list of quoted
// brand strings each carrying a "v" version parameter. Malformed input yields
// nil rather than an error: hints are advisory and a broken header is treated
// the same as an absent one.
func parseBrands(value string) []Brand {
	if value == "" {
		return nil
	}

	list, err := httpsfv.UnmarshalList([]string{value})
	if err != nil {
		return nil
	}

	brands := make([]Brand, 0, len(list))
	for _, member := range list {
		item, ok := member.(httpsfv.Item)
		if !ok {
			continue
		}
		name, ok := item.Value.(string)
		if !ok || name == "" {
			continue
		}

		brand := Brand{Name: name}
		if v, ok := item.Params.Get("v"); ok {
			if version, ok := v.(string); ok {
				brand.Version = version
			}
		}
		brands = append(brands, brand)
	}

	if len(brands) == 0 {
		return nil
	}
	return brands
}

// parseItemString decodes a structured field string item such as
// Sec-CH-UA-Platform: "Windows". Malformed input yields "".
func parseItemString(value string) string {
	if value == "" {
		return ""
	}

	item, err := httpsfv.UnmarshalItem([]string{value})
	if err != nil {
		return ""
	}

	s, _ := item.Value.(string)
	return s
}
