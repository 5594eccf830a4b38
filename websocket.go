package headerutil

import "strings"

// IsWebSocketUpgradeRequest reports whether headers form a WebSocket
// upgrade request: a Connection value containing the "upgrade" token and
// an Upgrade value equal to "websocket". Both comparisons are
// case-insensitive, and both headers must be present.
func (u *Util) IsWebSocketUpgradeRequest(headers HeaderMap) bool {
	connection := headers.Get(headerConnection)
	upgrade := headers.Get(headerUpgrade)
	if connection == "" || upgrade == "" {
		return false
	}

	if !strings.EqualFold(upgrade, webSocketValue) {
		return false
	}

	// Connection is a comma-separated token list ("keep-alive, Upgrade").
	for _, token := range strings.Split(connection, ",") {
		if strings.EqualFold(strings.TrimSpace(token), upgradeTokenValue) {
			return true
		}
	}

	return false
}
