package useragent

import (
	"regexp"
	"strings"
)

// Filter corrects a structurally extracted Result. Filters read the current
// state left by earlier filters and must not assume they are exclusive.
type Filter func(Result) Result

var (
	rvVersionRe      = regexp.MustCompile(`rv:(\d+(?:\.\d+)?)`)
	tokenVersionRe   = regexp.MustCompile(`(?i) version/(\d+(?:\.\d+)?)`)
	androidVersionRe = regexp.MustCompile(`Android \d+(?:\.\d+)*`)
)

// DefaultFilters returns the built-in filter chain in the order it runs.
func DefaultFilters() []Filter {
	return []Filter{
		FilterBots,
		FilterBrowserNames,
		FilterBrowserVersions,
		FilterBrowserEngines,
		FilterOperatingSystems,
		FilterDevices,
	}
}

func applyFilters(res Result, filters []Filter) Result {
	for _, f := range filters {
		res = f(res)
	}
	return res
}

// FilterBots recognizes Yahoo! Slurp, which has no version token.
func FilterBots(res Result) Result {
	if res.BrowserName == "" && containsFold(res.String, "yahoo! slurp") {
		res.BrowserName = BotYahooSlurp
	}
	return res
}

// FilterBrowserNames recognizes IE 11, which dropped "MSIE" from its user agent.
func FilterBrowserNames(res Result) Result {
	if res.BrowserName == "" && res.BrowserEngine == EngineTrident && strings.Contains(res.String, "rv:") {
		res.BrowserName = BrowserIE
		res.BrowserVersion = submatch(rvVersionRe, res.String)
	}
	return res
}

// FilterBrowserVersions reads the real version of Safari and Opera 10+ from
// their "Version/" token; the phrase match only found a build number.
func FilterBrowserVersions(res Result) Result {
	if res.BrowserName != BrowserSafari && res.BrowserName != BrowserOpera {
		return res
	}
	if v := submatch(tokenVersionRe, res.String); v != "" {
		res.BrowserVersion = v
	}
	return res
}

// FilterBrowserEngines fills in Trident for MSIE versions that omit it.
func FilterBrowserEngines(res Result) Result {
	if res.BrowserName == BrowserIE && res.BrowserEngine == "" {
		res.BrowserEngine = EngineTrident
	}
	return res
}

// FilterOperatingSystems reports "Android <version>" instead of the bare
// Android or Linux entry.
func FilterOperatingSystems(res Result) Result {
	if !strings.Contains(res.String, "Android ") {
		return res
	}
	if os := androidVersionRe.FindString(res.String); os != "" {
		res.OperatingSystem = os
	}
	return res
}

// FilterDevices has no corrections yet.
func FilterDevices(res Result) Result {
	return res
}

func submatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return ""
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
