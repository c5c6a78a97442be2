package unicodetbl

var (
	idStart    = Build(idStartRanges)
	idContinue = Build(append(append([]Range{}, idStartRanges...), idContinueRanges...))
)

// IsIDStart reports whether codePoint may begin an identifier, matching
// the ID_Start table the original implementation's lex.rs consults in
// parse_identifier's slow path (plus the JS-specific '$'/'_' additions
// folded into idStartRanges in ranges.go).
func IsIDStart(codePoint rune) bool {
	return idStart.Contains(codePoint)
}

// IsIDContinue reports whether codePoint may continue an identifier
// begun by a code point satisfying IsIDStart.
func IsIDContinue(codePoint rune) bool {
	return idContinue.Contains(codePoint)
}
