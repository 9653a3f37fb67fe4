package useragent

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UserAgent holds the classification of one user agent string and offers
// convenience queries on top of it.
type UserAgent struct {
	userAgent string
	result    Result
}

// New classifies ua with the built-in knowledge base in strict mode.
func New(ua string) UserAgent {
	return NewWithClassifier(ua, defaultParser)
}

// NewWithClassifier classifies ua with c.
func NewWithClassifier(ua string, c Classifier) UserAgent {
	if c == nil {
		c = defaultParser
	}
	return UserAgent{userAgent: ua, result: c.Parse(ua)}
}

// FromValue builds a UserAgent from an untyped value such as a decoded JSON
// field. Nil is treated as an empty string; strings, byte slices, string
// pointers and fmt.Stringer values are accepted. Anything else returns
// ErrInvalidInput.
func FromValue(v any, c Classifier) (UserAgent, error) {
	var s string
	switch t := v.(type) {
	case nil:
	case string:
		s = t
	case []byte:
		s = string(t)
	case *string:
		if t != nil {
			s = *t
		}
	case fmt.Stringer:
		s = t.String()
	default:
		return UserAgent{}, fmt.Errorf("%w: got %T", ErrInvalidInput, v)
	}
	return NewWithClassifier(s, c), nil
}

// FromRequest classifies the User-Agent header of r.
func FromRequest(r *http.Request, c Classifier) UserAgent {
	if r == nil {
		return NewWithClassifier("", c)
	}
	return NewWithClassifier(r.UserAgent(), c)
}

// String returns the full browser name.
func (ua UserAgent) String() string { return ua.FullName() }

// UserAgent returns the user agent string as given.
func (ua UserAgent) UserAgent() string { return ua.userAgent }

// Result returns the underlying classification.
func (ua UserAgent) Result() Result { return ua.result }

// BrowserName returns the browser or bot label, e.g. "chrome".
func (ua UserAgent) BrowserName() string { return ua.result.BrowserName }

// BrowserVersion returns the major.minor browser version, e.g. "41.0".
func (ua UserAgent) BrowserVersion() string { return ua.result.BrowserVersion }

// BrowserEngine returns the rendering engine, e.g. "webkit".
func (ua UserAgent) BrowserEngine() string { return ua.result.BrowserEngine }

// OperatingSystem returns the operating system, e.g. "Windows 7".
func (ua UserAgent) OperatingSystem() string { return ua.result.OperatingSystem }

// Device returns the device label, or DeviceOther.
func (ua UserAgent) Device() string { return ua.result.Device }

// FullName combines browser name and version, e.g. "chrome 41.0".
func (ua UserAgent) FullName() string {
	return strings.TrimSpace(ua.result.BrowserName + " " + ua.result.BrowserVersion)
}

// Title returns the full name for display, e.g. "Chrome 41.0".
func (ua UserAgent) Title() string {
	return cases.Title(language.English).String(ua.FullName())
}

// IsUnknown returns true if no browser or bot was recognized
func (ua UserAgent) IsUnknown() bool { return ua.result.BrowserName == "" }

// IsRealBrowser returns true if the user agent is a known browser
func (ua UserAgent) IsRealBrowser() bool {
	_, ok := knownRealBrowsers[ua.result.BrowserName]
	return ok
}

// IsBot returns true if the user agent is a known crawler
func (ua UserAgent) IsBot() bool {
	_, ok := knownBots[ua.result.BrowserName]
	return ok
}

// Map returns the classification with keys browser_name, browser_version,
// browser_engine, operating_system and device.
func (ua UserAgent) Map() map[string]any { return ua.result.Map() }
