package simdvec

// CountIdentifierBytes returns the number of leading lane bytes that
// belong to [A-Za-z0-9_$], stopping at the first non-matching byte (or
// Width if all 16 match). Grounded on count_identifier_characters in the
// original implementation's lex.rs parse_identifier_fast_only, which
// lower-cases with the 0x20 bit before range-checking a-z so upper- and
// lower-case letters share one comparison.
func CountIdentifierBytes(l Lane) int {
	const upperToLowerMask = 'a' - 'A'
	lower := LaneOr(l, Repeated(upperToLowerMask))
	isAlpha := LaneGt(lower, Repeated('a'-1)).And(LaneLt(lower, Repeated('z'+1)))
	isDigit := LaneGt(l, Repeated('0'-1)).And(LaneLt(l, Repeated('9'+1)))
	isIdent := isAlpha.Or(isDigit).Or(LaneEq(l, Repeated('$'))).Or(LaneEq(l, Repeated('_')))
	return isIdent.FirstFalse()
}
