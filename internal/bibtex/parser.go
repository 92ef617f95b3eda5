package bibtex

import (
	"fmt"
	"os"
	"strings"
	"unicode"
)

// Load parses one or more .bib files into entry records.
//
// Files are read and concatenated in argument order before parsing, so
// @string macros defined in an earlier file (pass the abbreviation file
// first) resolve in later files. Any unreadable file or malformed record
// fails the whole load; there is no partial result.
func Load(paths ...string) ([]Entry, error) {
	var b strings.Builder
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.ToValidUTF8(string(data), "�"))
	}

	entries, err := Parse(b.String())
	if err != nil {
		return nil, err
	}

	ResolveCrossrefs(entries)
	return entries, nil
}

// Parse parses concatenated .bib source text into entry records.
//
// @string definitions populate a single macro namespace shared by the
// whole buffer; @comment and @preamble blocks are skipped. Field names
// and entry types are lower-cased, citation keys kept verbatim. LaTeX
// accent markup in field values is decoded to plain text and month
// fields are normalized to integer form. Duplicate citation keys are
// not an error; every record is kept in parse order.
func Parse(src string) ([]Entry, error) {
	p := &parser{src: src, macros: make(map[string]string)}

	var entries []Entry
	for {
		if !p.seekRecord() {
			return entries, nil
		}
		kind := strings.ToLower(p.readWord())
		switch kind {
		case "":
			return nil, p.errorf("missing entry type after @")
		case "string":
			if err := p.parseString(); err != nil {
				return nil, err
			}
		case "comment", "preamble":
			if err := p.skipBlock(); err != nil {
				return nil, err
			}
		default:
			e, err := p.parseEntry(kind)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
	}
}

// parser scans a .bib buffer. It tracks only a byte offset; line numbers
// are recovered lazily for error messages.
type parser struct {
	src    string
	pos    int
	macros map[string]string
}

func (p *parser) errorf(format string, args ...interface{}) error {
	line := 1 + strings.Count(p.src[:p.pos], "\n")
	return fmt.Errorf("bibtex: line %d: %s", line, fmt.Sprintf(format, args...))
}

// seekRecord advances to the next '@' at top level, skipping free text
// and '%' line comments. Returns false at end of input.
func (p *parser) seekRecord() bool {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '@':
			p.pos++
			return true
		case '%':
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
		default:
			p.pos++
		}
	}
	return false
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

// readWord reads a run of letters (entry kinds are plain words).
func (p *parser) readWord() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

// openDelim consumes '{' or '(' and returns the matching close delimiter.
func (p *parser) openDelim() (byte, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0, p.errorf("unexpected end of input, expected { or (")
	}
	switch p.src[p.pos] {
	case '{':
		p.pos++
		return '}', nil
	case '(':
		p.pos++
		return ')', nil
	}
	return 0, p.errorf("expected { or ( after entry type, found %q", p.src[p.pos])
}

// parseString handles one @string{name = value} definition. Later
// definitions of the same name overwrite earlier ones.
func (p *parser) parseString() error {
	closer, err := p.openDelim()
	if err != nil {
		return err
	}
	name, err := p.readFieldName()
	if err != nil {
		return err
	}
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != '=' {
		return p.errorf("expected = in @string definition of %q", name)
	}
	p.pos++
	value, err := p.readValue()
	if err != nil {
		return err
	}
	p.macros[strings.ToLower(name)] = value
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == ',' {
		p.pos++
		p.skipSpace()
	}
	if p.pos >= len(p.src) || p.src[p.pos] != closer {
		return p.errorf("unterminated @string definition of %q", name)
	}
	p.pos++
	return nil
}

// skipBlock consumes a balanced { } or ( ) block (@comment, @preamble).
func (p *parser) skipBlock() error {
	closer, err := p.openDelim()
	if err != nil {
		return err
	}
	opener := byte('{')
	if closer == ')' {
		opener = '('
	}
	depth := 1
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				p.pos++
				return nil
			}
		}
		p.pos++
	}
	return p.errorf("unterminated block")
}

// parseEntry parses the body of one @type{key, field = value, ...} record.
func (p *parser) parseEntry(kind string) (Entry, error) {
	closer, err := p.openDelim()
	if err != nil {
		return Entry{}, err
	}

	key, err := p.readKey(closer)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{Type: kind, Key: key, Fields: make(map[string]string)}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return Entry{}, p.errorf("unterminated entry %q", key)
		}
		if p.src[p.pos] == closer {
			p.pos++
			return e, nil
		}

		name, err := p.readFieldName()
		if err != nil {
			return Entry{}, err
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != '=' {
			return Entry{}, p.errorf("expected = after field %q in entry %q", name, key)
		}
		p.pos++
		value, err := p.readValue()
		if err != nil {
			return Entry{}, err
		}

		name = strings.ToLower(name)
		value = DecodeLaTeX(value)
		if name == "month" {
			value = NormalizeMonth(value)
		}
		e.Fields[name] = value

		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
		}
	}
}

// readKey reads the citation key up to the field-separating comma. A
// record may legally have no fields at all, so the closing delimiter
// also ends the key.
func (p *parser) readKey(closer byte) (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == ',' {
			key := strings.TrimSpace(p.src[start:p.pos])
			p.pos++
			if key == "" {
				return "", p.errorf("empty citation key")
			}
			return key, nil
		}
		if c == closer {
			key := strings.TrimSpace(p.src[start:p.pos])
			if key == "" {
				return "", p.errorf("empty citation key")
			}
			return key, nil
		}
		if c == '\n' {
			return "", p.errorf("unterminated citation key")
		}
		p.pos++
	}
	return "", p.errorf("unterminated citation key")
}

// readFieldName reads a field or macro identifier.
func (p *parser) readFieldName() (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '=' || c == ',' || c == '{' || c == '}' || c == '(' || c == ')' ||
			c == '"' || c == '#' || unicode.IsSpace(rune(c)) {
			break
		}
		p.pos++
	}
	name := p.src[start:p.pos]
	if name == "" {
		return "", p.errorf("expected field name")
	}
	return name, nil
}

// readValue reads a field value: one or more simple values joined by the
// '#' concatenation operator. Simple values are balanced {...} groups,
// "..." strings, bare numbers, or macro names resolved against the
// @string namespace (unknown macros keep their literal name).
func (p *parser) readValue() (string, error) {
	var parts []string
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return "", p.errorf("unterminated field value")
		}
		switch c := p.src[p.pos]; {
		case c == '{':
			s, err := p.readBraced()
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		case c == '"':
			s, err := p.readQuoted()
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		default:
			word, err := p.readFieldName()
			if err != nil {
				return "", p.errorf("expected field value")
			}
			if isNumber(word) {
				parts = append(parts, word)
			} else if def, ok := p.macros[strings.ToLower(word)]; ok {
				parts = append(parts, def)
			} else {
				parts = append(parts, word)
			}
		}

		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == '#' {
			p.pos++
			continue
		}
		return strings.Join(parts, ""), nil
	}
}

// readBraced consumes a balanced {...} group and returns its inner text.
func (p *parser) readBraced() (string, error) {
	p.pos++ // opening brace
	start := p.pos
	depth := 1
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				s := p.src[start:p.pos]
				p.pos++
				return s, nil
			}
		}
		p.pos++
	}
	return "", p.errorf("unterminated braced value")
}

// readQuoted consumes a "..." value. Braces inside quotes protect a
// literal '"' per BibTeX convention.
func (p *parser) readQuoted() (string, error) {
	p.pos++ // opening quote
	start := p.pos
	depth := 0
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '{':
			depth++
		case '}':
			depth--
		case '"':
			if depth == 0 {
				s := p.src[start:p.pos]
				p.pos++
				return s, nil
			}
		}
		p.pos++
	}
	return "", p.errorf("unterminated quoted value")
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
