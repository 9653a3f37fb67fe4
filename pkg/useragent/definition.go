package useragent

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Entry maps a canonical label to its alternative patterns.
// Patterns are regular expression fragments matched case-insensitively.
// A label containing "*" is completed at match time with the text of the
// first capture group inside the patterns.
type Entry struct {
	Label    string   `yaml:"label"`
	Patterns []string `yaml:"patterns"`
}

// Table is an ordered list of entries. Earlier entries take precedence, so
// specific names must be listed before the generic names they contain.
type Table []Entry

// Labels returns the labels of the table in precedence order.
func (t Table) Labels() []string {
	labels := make([]string, 0, len(t))
	for _, e := range t {
		labels = append(labels, e.Label)
	}
	return labels
}

// Definition is the knowledge base consumed by the Parser.
// Implementations must return the same tables on every call.
type Definition interface {
	Browsers() Table
	Bots() Table
	Engines() Table
	OperatingSystems() Table
	Devices() Table
}

// FilterProvider may be implemented by a Definition to replace the default
// filter chain with its own.
type FilterProvider interface {
	Filters() []Filter
}

// Since some user agents carry more than one phrase, the order of these
// tables defines the precedence.
var (
	defaultBrowsers = Table{
		{BrowserFirefox, []string{"firefox", "minefield", "iceweasel", "shiretoko", "namoroka", "shredder", "granparadiso"}},
		{BrowserOpera, []string{"opr", "opera"}},
		{BrowserEdge, []string{"edge"}},
		{BrowserYandex, []string{"yabrowser"}},
		{BrowserMaxthon, []string{"maxthon"}},
		{BrowserIE, []string{"msie"}},
		{BrowserChrome, []string{"chrome"}},
		{BrowserSafari, []string{"safari"}},
		{BrowserKonqueror, []string{"konqueror"}},
		{BrowserNetscape, []string{"netscape"}},
		{BrowserLynx, []string{"lynx"}},
	}

	defaultBots = Table{
		{BotGoogle, []string{"googlebot"}},
		{BotBing, []string{"bingbot"}},
		{BotMSN, []string{"msnbot"}},
		{BotYahoo, []string{"yahoobot"}},
		{BotYandex, []string{`yandex\w+`}},
		{BotBaidu, []string{`baiduspider\w*`}},
		{BotFacebook, []string{"facebookexternalhit"}},
		{"flamecore *", []string{`flamecore (\w+)`}},
	}

	defaultEngines = Table{
		{EngineWebKit, []string{"webkit"}},
		{EngineGecko, []string{"gecko"}},
		{EngineTrident, []string{"trident"}},
		{EnginePresto, []string{"presto"}},
		{EngineKHTML, []string{"khtml"}},
	}

	// Linux comes last: most mobile and desktop UAs also carry it.
	defaultOperatingSystems = Table{
		{OSWindows10, []string{"windows nt 10.0"}},
		{OSWindows81, []string{"windows nt 6.3"}},
		{OSWindows8, []string{"windows nt 6.2"}},
		{OSWindows7, []string{"windows nt 6.1"}},
		{OSWindowsVista, []string{"windows nt 6.0"}},
		{OSWindows2003, []string{"windows nt 5.2"}},
		{OSWindowsXP, []string{"windows nt 5.1", "windows xp"}},
		{OSWindows2000, []string{"windows nt 5.0"}},
		{OSMacOSX, []string{"mac os x"}},
		{OSMacOS9, []string{"mac_powerpc"}},
		{OSMacintosh, []string{"macintosh"}},
		{OSUbuntu, []string{"ubuntu"}},
		{OSiOS, []string{"iphone", "ipad", "ipod"}},
		{OSAndroid, []string{"android"}},
		{OSBlackBerry, []string{"blackberry"}},
		{OSMobile, []string{"mobile", "webos"}},
		{OSLinux, []string{"linux"}},
	}

	defaultDevices = Table{
		{DeviceIPhone, []string{"iphone"}},
		{DeviceIPad, []string{"ipad"}},
		{DeviceIPod, []string{"ipod"}},
		{DeviceNexus, []string{`nexus (\w+)`}},
		{DeviceBlackBerry, []string{"blackberry"}},
		{DeviceKindleFire, []string{"kindle fire"}},
		{DeviceKindle, []string{"kindle"}},
		{DeviceMobile, []string{"mobile", "android"}},
	}
)

type defaultDefinition struct{}

// DefaultDefinition returns the built-in knowledge base.
// The returned tables are shared and must not be modified.
func DefaultDefinition() Definition { return defaultDefinition{} }

func (defaultDefinition) Browsers() Table         { return defaultBrowsers }
func (defaultDefinition) Bots() Table             { return defaultBots }
func (defaultDefinition) Engines() Table          { return defaultEngines }
func (defaultDefinition) OperatingSystems() Table { return defaultOperatingSystems }
func (defaultDefinition) Devices() Table          { return defaultDevices }

// TableSet is a Definition backed by plain tables, typically loaded from YAML.
type TableSet struct {
	BrowserTable         Table `yaml:"browsers"`
	BotTable             Table `yaml:"bots"`
	EngineTable          Table `yaml:"engines"`
	OperatingSystemTable Table `yaml:"operating_systems"`
	DeviceTable          Table `yaml:"devices"`
}

func (s *TableSet) Browsers() Table         { return s.BrowserTable }
func (s *TableSet) Bots() Table             { return s.BotTable }
func (s *TableSet) Engines() Table          { return s.EngineTable }
func (s *TableSet) OperatingSystems() Table { return s.OperatingSystemTable }
func (s *TableSet) Devices() Table          { return s.DeviceTable }

// ValidateDefinition reports every problem that would prevent def from
// being compiled. All errors wrap ErrInvalidDefinition.
func ValidateDefinition(def Definition) error {
	if def == nil {
		return fmt.Errorf("%w: nil definition", ErrInvalidDefinition)
	}

	var errs []error
	for _, t := range []struct {
		name  string
		table Table
	}{
		{"browsers", def.Browsers()},
		{"bots", def.Bots()},
		{"engines", def.Engines()},
		{"operating_systems", def.OperatingSystems()},
		{"devices", def.Devices()},
	} {
		errs = append(errs, validateTable(t.name, t.table)...)
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidDefinition}, errs...)...)
	}
	return nil
}

func validateTable(name string, table Table) []error {
	var errs []error
	seen := make(map[string]struct{}, len(table))

	for i, e := range table {
		if e.Label == "" {
			errs = append(errs, fmt.Errorf("%s[%d]: empty label", name, i))
			continue
		}
		if _, ok := seen[e.Label]; ok {
			errs = append(errs, fmt.Errorf("%s[%d]: duplicate label %q", name, i, e.Label))
		}
		seen[e.Label] = struct{}{}

		if len(e.Patterns) == 0 {
			errs = append(errs, fmt.Errorf("%s[%d] %q: no patterns", name, i, e.Label))
			continue
		}
		if strings.Count(e.Label, placeholder) > 1 {
			errs = append(errs, fmt.Errorf("%s[%d] %q: more than one placeholder", name, i, e.Label))
		}

		re, err := regexp.Compile(alternation(e.Patterns))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s[%d] %q: %w", name, i, e.Label, err))
			continue
		}
		if strings.Contains(e.Label, placeholder) && re.NumSubexp() < 2 {
			errs = append(errs, fmt.Errorf("%s[%d] %q: placeholder label needs a capture group", name, i, e.Label))
		}
	}

	return errs
}
