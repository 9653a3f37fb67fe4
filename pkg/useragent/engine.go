package useragent

func (p *Parser) parseEngine(ua string) string {
	return firstToken(p.engines, ua, nil)
}
