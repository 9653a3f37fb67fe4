package useragent

// Result is the outcome of classifying one user agent string.
// Empty fields mean the attribute could not be determined; Device falls back
// to DeviceOther. BrowserVersion is only set together with BrowserName.
type Result struct {
	String          string `json:"string"`
	BrowserName     string `json:"browser_name,omitempty"`
	BrowserVersion  string `json:"browser_version,omitempty"`
	BrowserEngine   string `json:"browser_engine,omitempty"`
	OperatingSystem string `json:"operating_system,omitempty"`
	Device          string `json:"device"`
}

// Map returns the classification as a key/value mapping.
// Undetermined attributes map to nil.
func (r Result) Map() map[string]any {
	return map[string]any{
		"browser_name":     nullable(r.BrowserName),
		"browser_version":  nullable(r.BrowserVersion),
		"browser_engine":   nullable(r.BrowserEngine),
		"operating_system": nullable(r.OperatingSystem),
		"device":           r.Device,
	}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
