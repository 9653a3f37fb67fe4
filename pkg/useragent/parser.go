package useragent

import (
	"io"
	"log/slog"
	"strings"
)

// Classifier turns a raw user agent string into a Result.
type Classifier interface {
	Parse(ua string) Result
	Classify(ua string, strict bool) Result
}

// Parser classifies user agent strings against a Definition.
// It is immutable after construction and safe for concurrent use.
type Parser struct {
	definition Definition
	strict     bool
	logger     *slog.Logger

	browsers   []phraseMatcher
	engines    []tokenMatcher
	systems    []tokenMatcher
	devices    []tokenMatcher
	filters    []Filter
	hasFilters bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithDefinition replaces the built-in knowledge base.
// If def implements FilterProvider, its filters replace the default chain.
func WithDefinition(def Definition) Option {
	return func(p *Parser) {
		if def != nil {
			p.definition = def
		}
	}
}

// WithFilters replaces the filter chain. Filters run in the given order.
func WithFilters(filters ...Filter) Option {
	return func(p *Parser) {
		p.filters = make([]Filter, 0, len(filters))
		for _, f := range filters {
			if f != nil {
				p.filters = append(p.filters, f)
			}
		}
		p.hasFilters = true
	}
}

// WithStrict sets the strictness used by Parse. Non-strict parsing skips
// the filter chain, trading accuracy for speed.
func WithStrict(strict bool) Option {
	return func(p *Parser) { p.strict = strict }
}

// WithLogger sets the logger used for diagnostics. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewParser compiles the knowledge base and returns a ready Parser.
// It fails only when a custom definition holds invalid patterns.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{
		definition: DefaultDefinition(),
		strict:     true,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := ValidateDefinition(p.definition); err != nil {
		return nil, err
	}

	var err error
	def := p.definition
	if p.browsers, err = compilePhrases(def.Browsers(), def.Bots()); err != nil {
		return nil, err
	}
	if p.engines, err = compileTokens(def.Engines()); err != nil {
		return nil, err
	}
	if p.systems, err = compileTokens(def.OperatingSystems()); err != nil {
		return nil, err
	}
	if p.devices, err = compileTokens(def.Devices()); err != nil {
		return nil, err
	}

	if !p.hasFilters {
		if fp, ok := def.(FilterProvider); ok {
			p.filters = fp.Filters()
		} else {
			p.filters = DefaultFilters()
		}
	}

	p.logger.Debug("user agent parser ready",
		slog.Int("browsers", len(def.Browsers())),
		slog.Int("bots", len(def.Bots())),
		slog.Int("engines", len(def.Engines())),
		slog.Int("operating_systems", len(def.OperatingSystems())),
		slog.Int("devices", len(def.Devices())),
		slog.Int("filters", len(p.filters)),
		slog.Bool("strict", p.strict),
	)

	return p, nil
}

// MustNewParser is like NewParser but panics on error.
func MustNewParser(opts ...Option) *Parser {
	p, err := NewParser(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Definition returns the knowledge base the parser was built from.
func (p *Parser) Definition() Definition { return p.definition }

// Parse classifies ua using the parser's configured strictness.
func (p *Parser) Parse(ua string) Result {
	return p.Classify(ua, p.strict)
}

// Classify extracts browser, engine, operating system and device from ua.
// When strict is set the filter chain corrects known ambiguities afterwards.
// Unrecognized input yields empty fields and never an error.
func (p *Parser) Classify(ua string, strict bool) Result {
	res := p.extract(ua)
	if strict {
		res = applyFilters(res, p.filters)
	}
	return res
}

func (p *Parser) extract(ua string) Result {
	res := Result{
		String: strings.TrimSpace(ua),
		Device: DeviceOther,
	}
	if res.String == "" {
		return res
	}

	res.BrowserName, res.BrowserVersion = p.parseBrowser(res.String)
	res.OperatingSystem = p.parseOS(res.String)
	res.BrowserEngine = p.parseEngine(res.String)
	if device := p.parseDevice(res.String); device != "" {
		res.Device = device
	}

	return res
}

var defaultParser = MustNewParser()

// Parse classifies ua with the built-in knowledge base in strict mode.
func Parse(ua string) Result { return defaultParser.Parse(ua) }

// Classify classifies ua with the built-in knowledge base.
func Classify(ua string, strict bool) Result { return defaultParser.Classify(ua, strict) }
