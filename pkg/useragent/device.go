package useragent

import "strings"

// parseDevice returns the device label, with a placeholder completed by the
// upper-cased model captured from ua (e.g. "Google Nexus ONE").
func (p *Parser) parseDevice(ua string) string {
	return firstToken(p.devices, ua, strings.ToUpper)
}
