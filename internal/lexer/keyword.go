package lexer

// keywords maps a normalized identifier spelling to its keyword
// TokenType. A single map lookup replaces the original's generated
// trie/switch cascade (qljs_case_keyword and friends) — Go's map
// implementation already gives us the O(1) dispatch that cascade exists
// to hand-roll, so reproducing the cascade would only obscure the table
// it's really encoding. Grounded on the keyword token types enumerated
// throughout lex.rs's token dispatch and on identifier.rs's
// is_initial_identifier_character/is_identifier_character split that
// makes "is this spelling a keyword" a pure post-scan table lookup.
var keywords = map[string]TokenType{
	"break":      TokenKeywordBreak,
	"case":       TokenKeywordCase,
	"catch":      TokenKeywordCatch,
	"class":      TokenKeywordClass,
	"const":      TokenKeywordConst,
	"continue":   TokenKeywordContinue,
	"debugger":   TokenKeywordDebugger,
	"default":    TokenKeywordDefault,
	"delete":     TokenKeywordDelete,
	"do":         TokenKeywordDo,
	"else":       TokenKeywordElse,
	"export":     TokenKeywordExport,
	"extends":    TokenKeywordExtends,
	"false":      TokenKeywordFalse,
	"finally":    TokenKeywordFinally,
	"for":        TokenKeywordFor,
	"function":   TokenKeywordFunction,
	"if":         TokenKeywordIf,
	"import":     TokenKeywordImport,
	"in":         TokenKeywordIn,
	"instanceof": TokenKeywordInstanceof,
	"new":        TokenKeywordNew,
	"null":       TokenKeywordNull,
	"return":     TokenKeywordReturn,
	"super":      TokenKeywordSuper,
	"switch":     TokenKeywordSwitch,
	"this":       TokenKeywordThis,
	"throw":      TokenKeywordThrow,
	"true":       TokenKeywordTrue,
	"try":        TokenKeywordTry,
	"typeof":     TokenKeywordTypeof,
	"var":        TokenKeywordVar,
	"void":       TokenKeywordVoid,
	"while":      TokenKeywordWhile,
	"with":       TokenKeywordWith,

	"implements": TokenKeywordImplements,
	"interface":  TokenKeywordInterface,
	"let":        TokenKeywordLet,
	"package":    TokenKeywordPackage,
	"private":    TokenKeywordPrivate,
	"protected":  TokenKeywordProtected,
	"public":     TokenKeywordPublic,
	"static":     TokenKeywordStatic,
	"yield":      TokenKeywordYield,
}

// strictOnlyReservedKeywords are TokenType values that are reserved only
// in strict-mode code. The lexer itself is mode-agnostic (spec.md's Open
// Question on strict-mode demotion: see DESIGN.md); it always reports
// these as their keyword TokenType and leaves demotion to a parser that
// knows the enclosing mode.
var strictOnlyReservedKeywords = map[TokenType]bool{
	TokenKeywordImplements: true,
	TokenKeywordInterface:  true,
	TokenKeywordLet:        true,
	TokenKeywordPackage:    true,
	TokenKeywordPrivate:    true,
	TokenKeywordProtected:  true,
	TokenKeywordPublic:     true,
	TokenKeywordStatic:     true,
	TokenKeywordYield:      true,
}

// keywordType looks up a normalized spelling and returns its keyword
// TokenType, or (TokenIdentifier, false) if it is an ordinary
// identifier.
func keywordType(normalized []byte) (TokenType, bool) {
	t, ok := keywords[string(normalized)]
	if !ok {
		return TokenIdentifier, false
	}
	return t, true
}
