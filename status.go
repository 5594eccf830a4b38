package headerutil

import "strconv"

// ResponseStatus extracts the status code from a response header block.
//
// Unlike the lenient request-parsing helpers, a response without a
// ":status" pseudo-header is a codec protocol violation and is surfaced
// loudly: the returned error wraps ErrNoStatusHeader for an absent or
// empty header and ErrInvalidStatusHeader for a non-numeric value. It is
// never silently defaulted.
func (u *Util) ResponseStatus(headers HeaderMap) (int, error) {
	raw := headers.Get(pseudoHeaderStatus)
	if raw == "" {
		u.config.metrics.RecordParseFailure(opResponseStatus)
		u.config.metrics.RecordSecurityEvent(securityEventMissingStatus)
		u.config.logger.Warn("response header block missing :status")
		return 0, &StatusError{Err: ErrNoStatusHeader}
	}

	status, err := strconv.Atoi(raw)
	if err != nil || status < 0 {
		u.config.metrics.RecordParseFailure(opResponseStatus)
		return 0, &StatusError{Err: ErrInvalidStatusHeader, Value: raw}
	}

	u.config.metrics.RecordParseSuccess(opResponseStatus)
	return status, nil
}
