package useragent_test

import "github.com/flamecore/useragent/pkg/useragent"

type corpusCase struct {
	name     string
	ua       string
	expected useragent.Result
}

func expect(ua, browser, version, os, engine, device string) useragent.Result {
	return useragent.Result{
		String:          ua,
		BrowserName:     browser,
		BrowserVersion:  version,
		BrowserEngine:   engine,
		OperatingSystem: os,
		Device:          device,
	}
}

var desktopBrowsers = []corpusCase{
	{
		name:     "Chrome Mac",
		ua:       "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_10_1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/37.0.2062.124 Safari/537.36",
		expected: expect("", "chrome", "37.0", "Mac OS X", "webkit", "Other"),
	},
	{
		name:     "Safari Mac",
		ua:       "Mozilla/5.0 (Macintosh; U; Intel Mac OS X 10_6_2; fr-fr) AppleWebKit/531.21.8 (KHTML, like Gecko) Version/4.0.4 Safari/531.21.10",
		expected: expect("", "safari", "4.0", "Mac OS X", "webkit", "Other"),
	},
	{
		name:     "Opera 9 Windows",
		ua:       "Opera/9.61 (Windows NT 6.0; U; en) Presto/2.1.1",
		expected: expect("", "opera", "9.61", "Windows Vista", "presto", "Other"),
	},
	{
		name:     "Opera 10 Windows",
		ua:       "Opera/9.80 (Windows NT 5.1; U; en) Presto/2.2.15 Version/10.10",
		expected: expect("", "opera", "10.10", "Windows XP", "presto", "Other"),
	},
	{
		name:     "Opera 15 Windows",
		ua:       "Mozilla/5.0 (Windows NT 6.1; WOW64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/28.0.1500.52 Safari/537.36 OPR/15.0.1147.100",
		expected: expect("", "opera", "15.0", "Windows 7", "webkit", "Other"),
	},
	{
		name:     "Konqueror",
		ua:       "Mozilla/5.0 (compatible; Konqueror/4.4; Linux) KHTML/4.4.1 (like Gecko) Fedora/4.4.1-1.fc12",
		expected: expect("", "konqueror", "4.4", "Linux", "khtml", "Other"),
	},
	{
		name:     "Firefox Linux",
		ua:       "Mozilla/5.0 (X11; U; Linux i686; en-US; rv:1.9.0.17) Gecko/2010010604 Linux Mint/7 (Gloria) Firefox/3.0.17",
		expected: expect("", "firefox", "3.0", "Linux", "gecko", "Other"),
	},
	{
		name:     "Firefox Windows",
		ua:       "Mozilla/5.0 (Windows; U; Windows NT 6.1; en-GB; rv:1.9.1.7) Gecko/20091221 Firefox/3.5.7 GTB6 (.NET CLR 3.5.30729)",
		expected: expect("", "firefox", "3.5", "Windows 7", "gecko", "Other"),
	},
	{
		name:     "Firefox OSX",
		ua:       "Mozilla/5.0 (Macintosh; U; Intel Mac OS X 10.6; en-US; rv:1.9.1.8) Gecko/20100202 Firefox/3.5.8",
		expected: expect("", "firefox", "3.5", "Mac OS X", "gecko", "Other"),
	},
	{
		name:     "Chrome Linux",
		ua:       "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/41.0.2227.0 Safari/537.36",
		expected: expect("", "chrome", "41.0", "Linux", "webkit", "Other"),
	},
	{
		name:     "Minefield Mac",
		ua:       "Mozilla/5.0 (Macintosh; U; Intel Mac OS X 10.5; en-US; rv:1.9.3a1pre) Gecko/20100113 Minefield/3.7a1pre",
		expected: expect("", "firefox", "3.7", "Mac OS X", "gecko", "Other"),
	},
	{
		name:     "IE 6 Windows",
		ua:       "Mozilla/4.0 (compatible; MSIE 6.0; Windows NT 5.0; DigExt)",
		expected: expect("", "msie", "6.0", "Windows 2000", "trident", "Other"),
	},
	{
		name:     "IE 7 Windows",
		ua:       "Mozilla/4.0 (compatible; MSIE 7.0; Windows NT 6.0; Trident/4.0; GTB6; SLCC1; .NET CLR 2.0.50727; OfficeLiveConnector.1.3; OfficeLivePatch.0.0; .NET CLR 3.5.30729; InfoPath.2; .NET CLR 3.0.30729; MSOffice 12)",
		expected: expect("", "msie", "7.0", "Windows Vista", "trident", "Other"),
	},
	{
		name:     "IE 11 Windows",
		ua:       "Mozilla/5.0 (Windows NT 6.1; WOW64; Trident/7.0; rv:11.0) like Gecko",
		expected: expect("", "msie", "11.0", "Windows 7", "trident", "Other"),
	},
	{
		name:     "Edge Windows 10",
		ua:       "Mozilla/5.0 (Windows NT 10.0; WOW64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/39.0.2171.71 Safari/537.36 Edge/12.0",
		expected: expect("", "edge", "12.0", "Windows 10", "webkit", "Other"),
	},
	{
		name:     "Yandex Browser",
		ua:       "Mozilla/5.0 (Windows NT 6.1; WOW64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/30.0.1599.12785 YaBrowser/13.12.1599.12785 Safari/537.36",
		expected: expect("", "yabrowser", "13.12", "Windows 7", "webkit", "Other"),
	},
	{
		name:     "Maxthon 3",
		ua:       "Mozilla/5.0 (Windows; U; Windows NT 6.0; en-US) AppleWebKit/533.1 (KHTML, like Gecko) Maxthon/3.0.8.2 Safari/533.1",
		expected: expect("", "maxthon", "3.0", "Windows Vista", "webkit", "Other"),
	},
	{
		name:     "Maxthon 2",
		ua:       "Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 6.1; Trident/4.0; WOW64; Trident/5.0; .NET CLR 3.5.30729; Media Center PC 6.0; Maxthon 2.0)",
		expected: expect("", "maxthon", "2.0", "Windows 7", "trident", "Other"),
	},
	{
		name:     "Namoroka Ubuntu",
		ua:       "Mozilla/5.0 (X11; U; Linux x86_64; en-US; rv:1.9.2pre) Gecko/20100116 Ubuntu/9.10 (karmic) Namoroka/3.6pre",
		expected: expect("", "firefox", "3.6", "Ubuntu", "gecko", "Other"),
	},
	{
		name:     "Namoroka Mac",
		ua:       "Mozilla/5.0 (Macintosh; U; Intel Mac OS X 10.6; en-US; rv:1.9.2) Gecko/20100105 Firefox/3.6",
		expected: expect("", "firefox", "3.6", "Mac OS X", "gecko", "Other"),
	},
	{
		name:     "Lynx",
		ua:       "Lynx/2.8.6rel.5 libwww-FM/2.14 SSL-MM/1.4.1 OpenSSL/1.0.0a",
		expected: expect("", "lynx", "2.8", "", "", "Other"),
	},
}

var mobileBrowsers = []corpusCase{
	{
		name:     "iPhone 4",
		ua:       "Mozilla/5.0 (iPhone; U; CPU iPhone OS 4_3_2 like Mac OS X; en-us) AppleWebKit/533.17.9 (KHTML, like Gecko) Version/5.0.2 Mobile/8H7 Safari/6533.18.5",
		expected: expect("", "safari", "5.0", "iOS", "webkit", "Apple iPhone"),
	},
	{
		name:     "Motorola Xoom",
		ua:       "Mozilla/5.0 (Linux; U; Android 3.0; en-us; Xoom Build/HRI39) AppleWebKit/534.13 (KHTML, like Gecko) Version/4.0 Safari/534.13",
		expected: expect("", "safari", "4.0", "Android 3.0", "webkit", "Mobile"),
	},
	{
		name:     "Samsung Galaxy Tab",
		ua:       "Mozilla/5.0 (Linux U Android 2.2 es-es GT-P1000 Build/FROYO) AppleWebKit/533.1 (KHTML, like Gecko) Version/4.0 Mobile Safari/533.1",
		expected: expect("", "safari", "4.0", "Android 2.2", "webkit", "Mobile"),
	},
	{
		name:     "Google Nexus One",
		ua:       "Mozilla/5.0 (Linux; U; Android 2.2; en-us; Nexus One Build/FRF91) AppleWebKit/533.1 (KHTML, like Gecko) Version/4.0 Mobile Safari/533.1",
		expected: expect("", "safari", "4.0", "Android 2.2", "webkit", "Google Nexus ONE"),
	},
	{
		name:     "HTC Desire",
		ua:       "Mozilla/5.0 (Linux; U; Android 2.1-update1; de-de; HTC Desire 1.19.161.5 Build/ERE27) AppleWebKit/530.17 (KHTML, like Gecko) Version/4.0 Mobile Safari/530.17",
		expected: expect("", "safari", "4.0", "Android 2.1", "webkit", "Mobile"),
	},
	{
		name:     "Android Gingerbread",
		ua:       "Mozilla/5.0 (Linux; U; Android 2.3.6; ru-ru; GT-B5512 Build/GINGERBREAD) AppleWebKit/533.1 (KHTML, like Gecko) Version/4.0 Mobile Safari/533.1",
		expected: expect("", "safari", "4.0", "Android 2.3.6", "webkit", "Mobile"),
	},
	{
		name:     "Nexus 7",
		ua:       "Mozilla/5.0 (Linux; Android 4.1.1; Nexus 7 Build/JRO03D) AppleWebKit/535.19 (KHTML, like Gecko) Chrome/18.0.1025.166  Safari/535.19",
		expected: expect("", "chrome", "18.0", "Android 4.1.1", "webkit", "Google Nexus 7"),
	},
	{
		name:     "iPad",
		ua:       "Mozilla/5.0 (iPad; CPU OS 6_1_3 like Mac OS X) AppleWebKit/536.26 (KHTML, like Gecko) Version/6.0 Mobile/10B329 Safari/8536.25",
		expected: expect("", "safari", "6.0", "iOS", "webkit", "Apple iPad"),
	},
}

var bots = []corpusCase{
	{
		name:     "Googlebot",
		ua:       "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		expected: expect("", "googlebot", "2.1", "", "", "Other"),
	},
	{
		name:     "Bingbot",
		ua:       "Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)",
		expected: expect("", "bingbot", "2.0", "", "", "Other"),
	},
	{
		name:     "MSN bot",
		ua:       "msnbot/2.0b (+http://search.msn.com/msnbot.htm)",
		expected: expect("", "msnbot", "2.0", "", "", "Other"),
	},
	{
		name:     "Yahoo Slurp",
		ua:       "Mozilla/5.0 (compatible; Yahoo! Slurp; http://help.yahoo.com/help/us/ysearch/slurp)",
		expected: expect("", "yahoo bot", "", "", "", "Other"),
	},
	{
		name:     "Yandex bot",
		ua:       "Mozilla/5.0 (compatible; YandexBot/3.0; +http://yandex.com/bots)",
		expected: expect("", "yandexbot", "3.0", "", "", "Other"),
	},
	{
		name:     "Baidu spider",
		ua:       "Mozilla/5.0 (compatible; Baiduspider/2.0; +http://www.baidu.com/search/spider.html)",
		expected: expect("", "baidubot", "2.0", "", "", "Other"),
	},
	{
		name:     "Facebook",
		ua:       "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)",
		expected: expect("", "facebookbot", "1.1", "", "", "Other"),
	},
	{
		name:     "Feedfetcher Google",
		ua:       "Feedfetcher-Google; (+http://www.google.com/feedfetcher.html; 2 subscribers; feed-id=6924676383167400434)",
		expected: expect("", "", "", "", "", "Other"),
	},
	{
		name:     "FlameCore Webtools",
		ua:       "Mozilla/5.0 (compatible; FlameCore Webtools/1.3)",
		expected: expect("", "flamecore webtools", "1.3", "", "", "Other"),
	},
	{
		name:     "Speedy Spider",
		ua:       "Speedy Spider (http://www.entireweb.com/about/search_tech/speedy_spider/)",
		expected: expect("", "", "", "", "", "Other"),
	},
}

func allCases() []corpusCase {
	all := make([]corpusCase, 0, len(desktopBrowsers)+len(mobileBrowsers)+len(bots))
	all = append(all, desktopBrowsers...)
	all = append(all, mobileBrowsers...)
	all = append(all, bots...)
	return all
}
