package unicodetbl

// idStartRanges and idContinueRanges are the curated script ranges
// described in table.go's package doc. ASCII '$' and '_' are folded
// into idStartRanges because JS treats them as ordinary identifier-start
// characters, not because Unicode's ID_Start includes them (it doesn't —
// the original implementation adds them as a separate fast-path check;
// baking them into the table keeps this port's lookup a single
// Contains call).
var idStartRanges = []Range{
	{0x0024, 0x0024},         // $
	{0x0041, 0x005A},         // A-Z
	{0x005F, 0x005F},         // _
	{0x0061, 0x007A},         // a-z
	{0x00AA, 0x00AA},         // feminine ordinal indicator
	{0x00B5, 0x00B5},         // micro sign
	{0x00BA, 0x00BA},         // masculine ordinal indicator
	{0x00C0, 0x00D6},         // Latin-1 Supplement letters
	{0x00D8, 0x00F6},
	{0x00F8, 0x02C1},         // Latin Extended-A/B, IPA Extensions
	{0x0370, 0x0373},         // Greek
	{0x0376, 0x0377},
	{0x037A, 0x037D},
	{0x037F, 0x037F},
	{0x0386, 0x0386},
	{0x0388, 0x03FF},
	{0x0400, 0x0484},         // Cyrillic
	{0x048A, 0x052F},
	{0x0531, 0x0556},         // Armenian
	{0x0561, 0x0587},
	{0x05D0, 0x05EA},         // Hebrew
	{0x05EF, 0x05F2},
	{0x0620, 0x064A},         // Arabic
	{0x0671, 0x06D3},
	{0x0904, 0x0939},         // Devanagari
	{0x0958, 0x0961},
	{0x0E01, 0x0E30},         // Thai
	{0x10A0, 0x10C5},         // Georgian
	{0x10D0, 0x10FA},
	{0x1E00, 0x1FBC},         // Latin Extended Additional, Greek Extended
	{0x1FC2, 0x1FFC},
	{0x2C00, 0x2C5F},         // Glagolitic
	{0x3041, 0x3096},         // Hiragana
	{0x30A1, 0x30FA},         // Katakana
	{0x3105, 0x312D},         // Bopomofo
	{0x3400, 0x4DBF},         // CJK Extension A
	{0x4E00, 0x9FFF},         // CJK Unified Ideographs
	{0xA000, 0xA48C},         // Yi
	{0xAC00, 0xD7A3},         // Hangul Syllables
	{0xF900, 0xFA6D},         // CJK Compatibility Ideographs
	{0xFB00, 0xFB06},         // Latin ligatures
	{0xFF21, 0xFF3A},         // Fullwidth Latin
	{0xFF41, 0xFF5A},
	{0xFF66, 0xFFBE},         // Halfwidth Katakana/Hangul
	{0x10000, 0x1000B},       // Linear B, representative astral sample
	{0x1E900, 0x1E943},       // Adlam, representative astral sample
	{0x20000, 0x2A6DF},       // CJK Extension B (supplementary plane)
}

var idContinueRanges = []Range{
	{0x0030, 0x0039},         // 0-9
	{0x0300, 0x036F},         // combining diacritical marks
	{0x200C, 0x200D},         // ZWNJ, ZWJ
	{0x203F, 0x2040},         // connector punctuation
	{0x2054, 0x2054},
	{0x0483, 0x0489},         // Cyrillic combining marks
	{0x0591, 0x05BD},         // Hebrew points
	{0x064B, 0x0669},         // Arabic combining marks + digits
	{0x06F0, 0x06F9},         // extended Arabic-Indic digits
	{0x0901, 0x0903},         // Devanagari signs
	{0x093C, 0x094D},
	{0x0966, 0x096F},         // Devanagari digits
	{0x0E31, 0x0E3A},         // Thai combining marks
	{0x0E47, 0x0E4E},
	{0x1DC0, 0x1DFF},         // combining diacritical marks supplement
	{0x20D0, 0x20FF},         // combining diacritical marks for symbols
	{0xFE00, 0xFE0F},         // variation selectors
	{0xFE20, 0xFE2F},         // combining half marks
	{0xFE33, 0xFE34},         // vertical connector punctuation
	{0xFE4D, 0xFE4F},
	{0xFF10, 0xFF19},         // fullwidth digits
	{0xE0100, 0xE01EF},       // variation selectors supplement
}
