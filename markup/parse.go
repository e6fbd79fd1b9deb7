// SPDX-License-Identifier: Unlicense OR MIT

package markup

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gioui.org/typeset/unit"
)

type parseState struct {
	orig string
	expr string
}

// parseError carries a failure and the offset it happened at
// through a panic to Parse.
type parseError struct {
	pos int
	err error
}

type valueKind uint8

const (
	callValue valueKind = iota
	lengthValue
	stringValue
	identValue
	colorValue
)

type value struct {
	pos    int
	kind   valueKind
	call   *call
	length length
	str    string
	color  color.NRGBA
}

type call struct {
	pos  int
	name string
	args []arg
}

type arg struct {
	// name is empty for positional arguments.
	name string
	val  value
}

// length is a sum of terms. A fractional length never mixes with
// other terms.
type length struct {
	rel unit.Rel
	fr  unit.Fr
	// values are the absolute terms as written, for font sizes
	// that resolve late.
	values []unit.Value
	// deg is an angle. Angles never mix with lengths.
	deg     float64
	isAngle bool
}

func (l length) isFr() bool {
	return l.fr != 0
}

func (st *parseState) pos() int {
	return len(st.orig) - len(st.expr)
}

func (st *parseState) errorf(f string, args ...any) {
	panic(parseError{pos: st.pos(), err: fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(f, args...))})
}

func parseDocument(st *parseState) *call {
	c := parseCall(st)
	skipWhitespace(st)
	if st.expr != "" {
		st.errorf("unexpected %q after document", st.expr[0])
	}
	return c
}

func parseCall(st *parseState) *call {
	skipWhitespace(st)
	c := &call{pos: st.pos()}
	c.name = parseName(st)
	if c.name == "" {
		st.errorf("missing layout name")
	}
	expect(st, "(")
	for peek(st) != ')' {
		c.args = append(c.args, parseArg(st))
		if peek(st) == ')' {
			break
		}
		expect(st, ",")
	}
	expect(st, ")")
	return c
}

func parseArg(st *parseState) arg {
	if c := peek(st); isNameStart(c) {
		backup := *st
		name := parseName(st)
		if peek(st) == ':' {
			expect(st, ":")
			return arg{name: name, val: parseValue(st)}
		}
		*st = backup
	}
	return arg{val: parseValue(st)}
}

func parseValue(st *parseState) value {
	c := peek(st)
	v := value{pos: st.pos()}
	switch {
	case c == '"':
		v.kind = stringValue
		v.str = parseString(st)
	case c == '#':
		v.kind = colorValue
		v.color = parseColor(st)
	case c == '-' || c == '.' || ('0' <= c && c <= '9'):
		v.kind = lengthValue
		v.length = parseLength(st)
	case isNameStart(c):
		backup := *st
		name := parseName(st)
		skipWhitespace(st)
		if strings.HasPrefix(st.expr, "(") {
			*st = backup
			v.kind = callValue
			v.call = parseCall(st)
		} else {
			v.kind = identValue
			v.str = name
		}
	default:
		st.errorf("unexpected %q", c)
	}
	return v
}

func parseLength(st *parseState) length {
	var l length
	for {
		num := parseFloat(st)
		switch {
		case strings.HasPrefix(st.expr, "%"):
			st.expr = st.expr[1:]
			l.rel = l.rel.Add(unit.Relative(unit.Percent(num)))
		case strings.HasPrefix(st.expr, "fr"):
			st.expr = st.expr[2:]
			l.fr += unit.Fr(num)
		case strings.HasPrefix(st.expr, "deg"):
			st.expr = st.expr[3:]
			l.deg += num
			l.isAngle = true
		default:
			suffix := st.expr[:len(st.expr)-len(strings.TrimLeftFunc(st.expr, isNameChar))]
			u, ok := unit.ParseUnit(suffix)
			switch {
			case ok:
				st.expr = st.expr[len(suffix):]
			case suffix == "" && num == 0:
				u = unit.UnitPt
			case suffix == "":
				st.errorf("missing unit")
			default:
				st.errorf("unknown unit %q", suffix)
			}
			l.values = append(l.values, unit.V(float32(num), u))
		}
		skipWhitespace(st)
		if !strings.HasPrefix(st.expr, "+") {
			break
		}
		expect(st, "+")
		skipWhitespace(st)
	}
	if l.isFr() && (!l.rel.IsZero() || len(l.values) > 0) {
		st.errorf("fractional length mixed with other lengths")
	}
	if l.isAngle && (l.isFr() || !l.rel.IsZero() || len(l.values) > 0) {
		st.errorf("angle mixed with lengths")
	}
	return l
}

func parseFloat(st *parseState) float64 {
	i := 0
	if strings.HasPrefix(st.expr, "-") {
		i++
	}
	for ; i < len(st.expr); i++ {
		c := st.expr[i]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
	}
	expr := st.expr[:i]
	v, err := strconv.ParseFloat(expr, 64)
	if err != nil {
		st.errorf("invalid number %q", expr)
	}
	st.expr = st.expr[i:]
	return v
}

func parseString(st *parseState) string {
	expect(st, `"`)
	var b strings.Builder
	for i := 0; i < len(st.expr); i++ {
		switch c := st.expr[i]; c {
		case '"':
			st.expr = st.expr[i+1:]
			return b.String()
		case '\\':
			if i+1 == len(st.expr) {
				break
			}
			i++
			switch e := st.expr[i]; e {
			case 'n':
				b.WriteByte('\n')
			case '"', '\\':
				b.WriteByte(e)
			default:
				st.expr = st.expr[i-1:]
				st.errorf("invalid escape \\%c", e)
			}
		default:
			b.WriteByte(c)
		}
	}
	st.expr = ""
	st.errorf("unterminated string")
	return ""
}

// parseColor parses #rgb, #rrggbb or #rrggbbaa.
func parseColor(st *parseState) color.NRGBA {
	expect(st, "#")
	n := len(st.expr) - len(strings.TrimLeftFunc(st.expr, isHex))
	hex := st.expr[:n]
	if n == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		st.errorf("invalid color #%s", st.expr[:n])
	}
	v, _ := strconv.ParseUint(hex, 16, 32)
	st.expr = st.expr[n:]
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

func parseName(st *parseState) string {
	skipWhitespace(st)
	n := len(st.expr) - len(strings.TrimLeftFunc(st.expr, isNameChar))
	name := st.expr[:n]
	if name != "" && !isNameStart(rune(name[0])) {
		st.errorf("invalid name %q", name)
	}
	st.expr = st.expr[n:]
	return name
}

func peek(st *parseState) rune {
	skipWhitespace(st)
	if len(st.expr) == 0 {
		st.errorf("unexpected end")
	}
	return rune(st.expr[0])
}

func expect(st *parseState, str string) {
	skipWhitespace(st)
	if !strings.HasPrefix(st.expr, str) {
		st.errorf("expected %q", str)
	}
	st.expr = st.expr[len(str):]
}

func skipWhitespace(st *parseState) {
	for len(st.expr) > 0 {
		switch st.expr[0] {
		case '\t', '\n', '\v', '\f', '\r', ' ':
			st.expr = st.expr[1:]
		default:
			return
		}
	}
}

func isNameStart(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isNameChar(c rune) bool {
	return isNameStart(c) || '0' <= c && c <= '9' || c == '-'
}

func isHex(c rune) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
