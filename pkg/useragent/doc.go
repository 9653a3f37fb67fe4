// Package useragent classifies HTTP User-Agent strings into browser name,
// browser version, rendering engine, operating system and device.
//
// Classification is a pure function of the input string and a static
// knowledge base of ordered pattern tables. It performs no I/O and never fails:
// an unrecognized string is reported as empty fields, with the device falling
// back to DeviceOther.
//
// # Architecture
//
// The knowledge base (definition.go) holds five ordered tables: browsers,
// bots, engines, operating systems and devices. Each entry maps a label to
// alternative regular expression fragments. The first entry that matches
// wins, so the order of the tables is the precedence.
//
// Parsing runs in two passes:
//
//	┌───────────┐   UA string   ┌──────────────────────────┐
//	│  Classify │──────────────▶│ browser.go  name/version │──┐
//	└───────────┘               │ engine.go   token        │  │
//	                            │ os.go       token        │  │
//	                            │ device.go   token + "*"  │  │
//	                            └──────────────────────────┘  │
//	                                                          ▼
//	                            ┌──────────────────────────┐
//	                            │ filter.go (strict only)  │──► Result
//	                            └──────────────────────────┘
//
// Browsers and bots are found as "name/1.2" or "name 1.2" phrases; only the
// major and minor version numbers are kept. Engines, operating systems and
// devices are bare tokens, ignored when preceded by "like " so that
// "like Gecko" or "like Mac OS X" do not produce false positives. A label
// such as "Google Nexus *" is completed with the captured model name.
//
// The filter chain then corrects known ambiguities: Yahoo! Slurp, IE 11
// without "MSIE", the "Version/" token of Safari and Opera, MSIE without an
// engine token, and the Android version.
//
// # Usage
//
//	ua := useragent.New(r.UserAgent())
//	if ua.IsBot() {
//	    // skip analytics, …
//	}
//	log.Printf("client=%s os=%s", ua.FullName(), ua.OperatingSystem())
//
// A Parser with a custom knowledge base, loaded from YAML:
//
//	def, err := useragent.LoadDefinitionFile("useragents.yaml")
//	if err != nil {
//	    return err
//	}
//	p, err := useragent.NewParser(useragent.WithDefinition(def))
//
// Within an HTTP stack, Middleware stores the classification in the request
// context where FromContext retrieves it:
//
//	r.Use(useragent.Middleware(nil))
//
// # Configuration
//
// LoadConfig reads USERAGENT_STRICT, USERAGENT_CACHE_SIZE and
// USERAGENT_DEFINITION_FILE from the environment (and optional .env files);
// NewFromConfig turns the result into a Classifier, wrapped in an LRU cache
// when a cache size is set.
//
// # Concurrency
//
// A Parser is immutable after NewParser returns and may be shared freely.
// CachedParser synchronizes its cache internally.
package useragent
