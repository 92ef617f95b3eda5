package bibtex

import (
	"regexp"
	"strings"
)

// symbolAccentRe matches accent commands spelled with a symbol: \'e,
// \'{e}, \"o and so on (acute, grave, circumflex, umlaut, tilde,
// macron, dot-above).
var symbolAccentRe = regexp.MustCompile(`\\(['"` + "`" + `^~=.])\s*\{?([a-zA-Z])\}?`)

// letterAccentRe matches accent commands spelled with a letter (breve,
// caron, cedilla, double acute, ogonek, ring, bar-under, dot-under).
// The argument must be braced or space-separated so that longer
// commands like \url are not mistaken for accents.
var letterAccentRe = regexp.MustCompile(`\\([uvcHkrbd])(?:\s+([a-zA-Z])|\{([a-zA-Z])\})`)

// glyphRe matches argument-less letter commands like \ss or \ae. The
// word boundary keeps it off longer commands; trailing space that
// terminates the command is consumed.
var glyphRe = regexp.MustCompile(`\\(ss|ae|AE|oe|OE|aa|AA|o|O|l|L|i|j)\b(\{\})?\s*`)

// commandRe matches any leftover \command once accents and glyphs are
// decoded; the command is dropped and its text left in place.
var commandRe = regexp.MustCompile(`\\[a-zA-Z]+\s*`)

// combining maps an accent command character to its combining mark,
// used when no precomposed form is known.
var combining = map[byte]rune{
	'\'': 0x0301, '`': 0x0300, '^': 0x0302, '"': 0x0308, '~': 0x0303,
	'=': 0x0304, '.': 0x0307, 'u': 0x0306, 'v': 0x030C, 'c': 0x0327,
	'H': 0x030B, 'k': 0x0328, 'r': 0x030A, 'b': 0x0331, 'd': 0x0323,
}

// precomposed maps "<accent><letter>" to the single-rune form for the
// combinations that actually occur in bibliographies.
var precomposed = map[string]string{
	"'a": "á", "'e": "é", "'i": "í", "'o": "ó", "'u": "ú", "'y": "ý",
	"'A": "Á", "'E": "É", "'I": "Í", "'O": "Ó", "'U": "Ú", "'Y": "Ý",
	"'c": "ć", "'C": "Ć", "'n": "ń", "'N": "Ń", "'s": "ś", "'S": "Ś",
	"'z": "ź", "'Z": "Ź",
	"`a": "à", "`e": "è", "`i": "ì", "`o": "ò", "`u": "ù",
	"`A": "À", "`E": "È", "`I": "Ì", "`O": "Ò", "`U": "Ù",
	"^a": "â", "^e": "ê", "^i": "î", "^o": "ô", "^u": "û",
	"^A": "Â", "^E": "Ê", "^I": "Î", "^O": "Ô", "^U": "Û",
	`"a`: "ä", `"e`: "ë", `"i`: "ï", `"o`: "ö", `"u`: "ü", `"y`: "ÿ",
	`"A`: "Ä", `"E`: "Ë", `"I`: "Ï", `"O`: "Ö", `"U`: "Ü",
	"~a": "ã", "~o": "õ", "~n": "ñ", "~A": "Ã", "~O": "Õ", "~N": "Ñ",
	"=a": "ā", "=e": "ē", "=i": "ī", "=o": "ō", "=u": "ū",
	".z": "ż", ".Z": "Ż",
	"ug": "ğ", "uG": "Ğ",
	"vc": "č", "vC": "Č", "vs": "š", "vS": "Š", "vz": "ž", "vZ": "Ž",
	"ve": "ě", "vr": "ř",
	"cc": "ç", "cC": "Ç", "cs": "ş", "cS": "Ş", "ct": "ţ", "cT": "Ţ",
	"Ho": "ő", "HO": "Ő", "Hu": "ű", "HU": "Ű",
	"ka": "ą", "kA": "Ą", "ke": "ę", "kE": "Ę",
	"ra": "å", "rA": "Å", "ru": "ů",
}

// glyphs maps argument-less commands to their characters.
var glyphs = map[string]string{
	"ss": "ß", "ae": "æ", "AE": "Æ", "oe": "œ", "OE": "Œ",
	"aa": "å", "AA": "Å", "o": "ø", "O": "Ø", "l": "ł", "L": "Ł",
	"i": "ı", "j": "ȷ",
}

// escapedChars undoes LaTeX escaping of special characters. Escaped
// braces become placeholders so that grouping-brace removal leaves them
// alone; restoreBraces turns them back at the end.
var escapedChars = strings.NewReplacer(
	`\&`, "&",
	`\%`, "%",
	`\$`, "$",
	`\#`, "#",
	`\_`, "_",
	`\{`, "\x01",
	`\}`, "\x02",
)

var restoreBraces = strings.NewReplacer("\x01", "{", "\x02", "}")

// accented returns the accented form of letter: the precomposed rune
// when one is known, otherwise the letter with a combining mark.
func accented(accent, letter string) string {
	if r, ok := precomposed[accent+letter]; ok {
		return r
	}
	return letter + string(combining[accent[0]])
}

// DecodeLaTeX converts LaTeX-encoded field text to plain Unicode:
// accent commands become accented characters, special-character escapes
// are undone, the non-breaking tie '~' becomes U+00A0, and grouping
// braces plus any remaining commands are stripped.
func DecodeLaTeX(s string) string {
	if !strings.ContainsAny(s, `\{}~`) {
		return s
	}

	s = symbolAccentRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := symbolAccentRe.FindStringSubmatch(m)
		return accented(sub[1], sub[2])
	})

	s = letterAccentRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := letterAccentRe.FindStringSubmatch(m)
		letter := sub[2]
		if letter == "" {
			letter = sub[3]
		}
		return accented(sub[1], letter)
	})

	s = glyphRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := glyphRe.FindStringSubmatch(m)
		return glyphs[sub[1]]
	})

	s = escapedChars.Replace(s)
	s = commandRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "~", " ")
	s = strings.ReplaceAll(s, "{", "")
	s = strings.ReplaceAll(s, "}", "")
	// Stray backslashes left by unmatched symbol commands.
	s = strings.ReplaceAll(s, `\`, "")
	return restoreBraces.Replace(s)
}
