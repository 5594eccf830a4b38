package headerutil

// SSLRedirectPath builds the https redirect target for a request from its
// ":authority" and ":path" pseudo-headers.
//
// No well-formedness validation is performed: a missing pseudo-header
// contributes an empty component and the (malformed) result is still
// returned. Redirect filters only invoke this on requests that carried
// both pseudo-headers through the codec.
func (u *Util) SSLRedirectPath(headers HeaderMap) string {
	return sslRedirectPrefix + headers.Get(pseudoHeaderAuthority) + headers.Get(pseudoHeaderPath)
}
