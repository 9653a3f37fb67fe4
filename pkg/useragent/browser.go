package useragent

// parseBrowser finds the first known browser or bot phrase in ua.
// Browsers are checked before bots; within each table, order decides.
func (p *Parser) parseBrowser(ua string) (name, version string) {
	for _, m := range p.browsers {
		if name, version, ok := m.match(ua); ok {
			return name, version
		}
	}
	return "", ""
}
