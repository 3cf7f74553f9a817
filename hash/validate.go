package hash

// ValidateContext reports whether c is structurally consistent: the family
// is recognized, the digest length is legal for that family, the stored
// rate equals the table value for the pair, the partial-block length is
// inside the rate, and the output length agrees with the variant.
//
// This is a defensive boundary check meant to catch memory corruption or
// fault-induced bit flips before a cryptographic operation trusts the
// context. It is a pure predicate: it never mutates c and returns false
// rather than an error, so callers can probe a context cheaply.
func ValidateContext(c *SpongeContext) bool {
	if c == nil {
		return false
	}
	// Family and digest length are checked jointly: the table holds the
	// only legal pairs, and an unrecognized family matches no entry.
	rate := lookupRate(c.family, c.digestBits)
	if rate == 0 || c.rate != rate {
		return false
	}
	if c.bufLen < 0 || c.bufLen >= c.rate {
		return false
	}
	switch c.family {
	case SHA3:
		return c.outputLen == c.digestBits/8
	case SHAKE:
		return c.outputLen > 0
	}
	return false
}

// ShakeValidateContext is ValidateContext restricted to extendable-output
// contexts: a structurally valid fixed-digest SHA-3 context is rejected,
// so callers requiring an XOF cannot proceed on a context that was
// silently misconfigured as SHA-3.
func ShakeValidateContext(c *SpongeContext) bool {
	return ValidateContext(c) && c.family == SHAKE
}
