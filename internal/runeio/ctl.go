package runeio

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ControlRune represents a named control codepoint.
type ControlRune struct {
	N string
	R rune
}

// C0Ctls contains the classic ASCII control characters.
var C0Ctls = [32]ControlRune{
	{"<NUL>", 0x00},
	{"<SOH>", 0x01},
	{"<STX>", 0x02},
	{"<ETX>", 0x03},
	{"<EOT>", 0x04},
	{"<ENQ>", 0x05},
	{"<ACK>", 0x06},
	{"<BEL>", 0x07},
	{"<BS>", 0x08},
	{"<HT>", 0x09},
	{"<NL>", 0x0A},
	{"<VT>", 0x0B},
	{"<NP>", 0x0C},
	{"<CR>", 0x0D},
	{"<SO>", 0x0E},
	{"<SI>", 0x0F},
	{"<DLE>", 0x10},
	{"<DC1>", 0x11},
	{"<DC2>", 0x12},
	{"<DC3>", 0x13},
	{"<DC4>", 0x14},
	{"<NAK>", 0x15},
	{"<SYN>", 0x16},
	{"<ETB>", 0x17},
	{"<CAN>", 0x18},
	{"<EM>", 0x19},
	{"<SUB>", 0x1A},
	{"<ESC>", 0x1B},
	{"<FS>", 0x1C},
	{"<GS>", 0x1D},
	{"<RS>", 0x1E},
	{"<US>", 0x1F},
}

// PseudoCtls provides the typical mnemonics for space and delete.
var PseudoCtls = [2]ControlRune{
	{"<SP>", 0x20},
	{"<DEL>", 0x7F},
}

// ControlWords maps control mnemonics, in upper and lower case, and their
// caret forms like ^I for <HT>, to runes.
var ControlWords = make(map[string]rune, 3*(len(C0Ctls)+len(PseudoCtls)))

func init() {
	for _, ctls := range [][]ControlRune{C0Ctls[:], PseudoCtls[:]} {
		for _, ctl := range ctls {
			ControlWords[strings.ToUpper(ctl.N)] = ctl.R
			ControlWords[strings.ToLower(ctl.N)] = ctl.R
			if caret := CaretForm(ctl.R); caret != "" {
				ControlWords[caret] = ctl.R
			}
		}
	}
}

// CaretForm computes the ^-escaped printable form of an ASCII control rune,
// or "" for any other rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	}
	return ""
}

// ParseByte parses a single ASCII byte given as a control mnemonic like
// <SP> or <HT>, a caret form like ^I, a quoted character like ' ' or '\t',
// or a bare single ASCII character.
//
// Only ASCII is accepted: any larger codepoint would span several bytes of
// UTF-8, so it could not be matched byte-by-byte.
func ParseByte(token string) (byte, error) {
	r, err := parseRune(token)
	if err != nil {
		return 0, err
	}
	if r >= 0x80 {
		return 0, errors.Errorf("%q is not an ASCII character", token)
	}
	return byte(r), nil
}

func parseRune(token string) (rune, error) {
	if r, defined := ControlWords[token]; defined {
		return r, nil
	}
	runes := []rune(token)
	switch {
	case len(runes) == 1:
		return runes[0], nil
	case len(runes) >= 3 && runes[0] == '\'' && runes[len(runes)-1] == '\'':
		value, _, tail, err := strconv.UnquoteChar(token[1:], '\'')
		if err != nil {
			return 0, errors.Wrapf(err, "invalid character literal %q", token)
		}
		if tail != "'" {
			return 0, errors.Errorf("invalid character literal %q", token)
		}
		return value, nil
	}
	return 0, errors.Errorf(`character must be "^X", "<NAME>", 'X', or a single character; got %q`, token)
}
