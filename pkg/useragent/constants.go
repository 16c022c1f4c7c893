package useragent

// Operating system display names produced by ParseOS.
const (
	// OSWindows identifies Microsoft Windows desktop releases
	OSWindows = "Windows"

	// OSMacOS identifies Apple macOS
	OSMacOS = "macOS"

	// OSAndroid identifies Google Android
	OSAndroid = "Android"

	// OSLinux identifies Linux-based operating systems
	OSLinux = "Linux"

	// OSUnknown is used when the operating system cannot be determined
	OSUnknown = "Unknown"
)

// Browser display names produced by ParseBrowser.
const (
	// BrowserEdge identifies Microsoft Edge
	BrowserEdge = "Edge"

	// BrowserChrome identifies Google Chrome
	BrowserChrome = "Chrome"

	// BrowserOpera identifies Opera
	BrowserOpera = "Opera"

	// BrowserFirefox identifies Mozilla Firefox
	BrowserFirefox = "Firefox"

	// BrowserSafari identifies Apple Safari
	BrowserSafari = "Safari"

	// BrowserUnknown is used when the browser cannot be determined
	BrowserUnknown = "Unknown"
)
