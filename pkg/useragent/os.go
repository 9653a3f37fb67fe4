package useragent

// parseOS walks the operating systems from the most specific entry to the
// least specific one, so "Linux" only wins when nothing else matched.
func (p *Parser) parseOS(ua string) string {
	return firstToken(p.systems, ua, nil)
}
