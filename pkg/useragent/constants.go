package useragent

// DeviceOther is reported when no device pattern matched.
const DeviceOther = "Other"

// Browser labels
const (
	// BrowserFirefox identifies Mozilla Firefox and its pre-release builds
	BrowserFirefox = "firefox"

	// BrowserOpera identifies Opera, both Presto and Chromium based
	BrowserOpera = "opera"

	// BrowserEdge identifies legacy Microsoft Edge
	BrowserEdge = "edge"

	// BrowserYandex identifies Yandex Browser
	BrowserYandex = "yabrowser"

	// BrowserMaxthon identifies Maxthon
	BrowserMaxthon = "maxthon"

	// BrowserIE identifies Internet Explorer
	BrowserIE = "msie"

	// BrowserChrome identifies Google Chrome
	BrowserChrome = "chrome"

	// BrowserSafari identifies Apple Safari
	BrowserSafari = "safari"

	// BrowserKonqueror identifies KDE Konqueror
	BrowserKonqueror = "konqueror"

	// BrowserNetscape identifies Netscape Navigator
	BrowserNetscape = "netscape"

	// BrowserLynx identifies the Lynx text browser
	BrowserLynx = "lynx"
)

// Bot labels
const (
	BotGoogle   = "googlebot"
	BotBing     = "bingbot"
	BotMSN      = "msnbot"
	BotYahoo    = "yahoobot"
	BotYandex   = "yandexbot"
	BotBaidu    = "baidubot"
	BotFacebook = "facebookbot"

	// BotYahooSlurp is assigned by the bot filter to Yahoo! Slurp, which
	// carries no version token.
	BotYahooSlurp = "yahoo bot"
)

// Engine labels
const (
	EngineWebKit  = "webkit"
	EngineGecko   = "gecko"
	EngineTrident = "trident"
	EnginePresto  = "presto"
	EngineKHTML   = "khtml"
)

// Operating system labels
const (
	OSWindows10    = "Windows 10"
	OSWindows81    = "Windows 8.1"
	OSWindows8     = "Windows 8"
	OSWindows7     = "Windows 7"
	OSWindowsVista = "Windows Vista"
	OSWindows2003  = "Windows Server 2003/XP x64"
	OSWindowsXP    = "Windows XP"
	OSWindows2000  = "Windows 2000"
	OSMacOSX       = "Mac OS X"
	OSMacOS9       = "Mac OS 9"
	OSMacintosh    = "Macintosh"
	OSUbuntu       = "Ubuntu"
	OSiOS          = "iOS"
	OSAndroid      = "Android"
	OSBlackBerry   = "BlackBerry"
	OSMobile       = "Mobile"
	OSLinux        = "Linux"
)

// Device labels
const (
	DeviceIPhone     = "Apple iPhone"
	DeviceIPad       = "Apple iPad"
	DeviceIPod       = "Apple iPod"
	DeviceNexus      = "Google Nexus *"
	DeviceBlackBerry = "BlackBerry"
	DeviceKindleFire = "Amazon Kindle Fire"
	DeviceKindle     = "Amazon Kindle"
	DeviceMobile     = "Mobile"
)

// placeholder marks the part of a label that is replaced by a captured group.
const placeholder = "*"

var knownRealBrowsers = map[string]struct{}{
	BrowserFirefox:   {},
	BrowserChrome:    {},
	BrowserIE:        {},
	BrowserOpera:     {},
	BrowserSafari:    {},
	BrowserEdge:      {},
	BrowserYandex:    {},
	BrowserMaxthon:   {},
	BrowserKonqueror: {},
	BrowserNetscape:  {},
	BrowserLynx:      {},
}

var knownBots = map[string]struct{}{
	BotGoogle:     {},
	BotBing:       {},
	BotMSN:        {},
	BotYahoo:      {},
	BotYahooSlurp: {},
	BotYandex:     {},
	BotBaidu:      {},
	BotFacebook:   {},
}
