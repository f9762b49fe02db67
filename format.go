package bitbuf

import (
	"encoding/hex"
	"strings"

	"github.com/pi/bitbuf/bits"
	"github.com/pi/bitbuf/gut"
	"github.com/pi/bitbuf/md"
	"github.com/pkg/errors"
)

const hexDigits = "0123456789abcdef"

func (b *BitBuffer) appendBinary(sb *strings.Builder, pos, n int64) {
	for done := int64(0); done < n; {
		w := chunkWidth(n - done)
		v, _ := bits.ReadBits(b.data, b.limit(), b.off+pos+done, w)
		for i := w - 1; i >= 0; i-- {
			sb.WriteByte('0' + byte(v>>uint(i)&1))
		}
		done += int64(w)
	}
}

// BinaryString returns one '0' or '1' per bit.
func (b *BitBuffer) BinaryString() string {
	return b.String()
}

// HexString returns ceil(Len()/4) lowercase hex digits. A partial last digit
// is zero-padded at its low end, as in ToBytes.
func (b *BitBuffer) HexString() string {
	s := hex.EncodeToString(b.ToBytes())
	return s[:(b.n+3)/4]
}

// FormatBinary writes the bits in groups of group bits joined by sep. A short
// last group is zero-padded at its low end to the full group width.
func (b *BitBuffer) FormatBinary(group int, sep string) (string, error) {
	return b.formatGroups(group, sep, func(sb *strings.Builder, v uint64) {
		for i := group - 1; i >= 0; i-- {
			sb.WriteByte('0' + byte(v>>uint(i)&1))
		}
	})
}

// FormatHex writes each group of groupBits bits as ceil(groupBits/4) hex
// digits, joined by sep. Each group is the numeric value of its bits,
// zero-extended on the left; a short last group is first zero-padded at its
// low end to groupBits bits.
func (b *BitBuffer) FormatHex(groupBits int, sep string) (string, error) {
	digits := (groupBits + 3) / 4
	return b.formatGroups(groupBits, sep, func(sb *strings.Builder, v uint64) {
		for i := digits - 1; i >= 0; i-- {
			sb.WriteByte(hexDigits[v>>uint(4*i)&0xF])
		}
	})
}

func (b *BitBuffer) formatGroups(group int, sep string, emit func(*strings.Builder, uint64)) (string, error) {
	if err := bits.CheckWidth(group, md.MaxWidth); err != nil {
		return "", err
	}
	var sb strings.Builder
	for p := int64(0); p < b.n; p += int64(group) {
		if p > 0 {
			sb.WriteString(sep)
		}
		emit(&sb, b.element(p, group))
	}
	return sb.String(), nil
}

// ParseBinary builds an owned buffer from '0' and '1' characters. An optional
// "0b" prefix, spaces and underscores are ignored.
func ParseBinary(s string) (*BitBuffer, error) {
	in := len(s)
	s = strings.TrimPrefix(strings.TrimLeft(s, " \t\r\n"), "0b")
	skip := in - len(s)
	s = strings.TrimRight(s, " \t\r\n")
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '0', '1':
			digits = append(digits, c)
		case ' ', '_':
		default:
			return nil, errors.Wrapf(gut.ErrInvalidArgument, "invalid binary digit %q at %d", c, skip+i)
		}
	}
	b, err := New(int64(len(digits)))
	if err != nil {
		return nil, err
	}
	for i, c := range digits {
		if c == '1' {
			_ = b.PutBit(int64(i), true)
		}
	}
	return b, nil
}

// ParseHex builds an owned buffer of 4 bits per hex digit. An optional "0x"
// prefix, spaces, underscores and colons are ignored.
func ParseHex(s string) (*BitBuffer, error) {
	in := len(s)
	s = strings.TrimLeft(s, " \t\r\n")
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	skip := in - len(s)
	s = strings.TrimRight(s, " \t\r\n")
	digits := make([]uint8, 0, len(s))
	for i := 0; i < len(s); i++ {
		var d uint8
		switch c := s[i]; {
		case c == ' ' || c == '_' || c == ':':
			continue
		case '0' <= c && c <= '9':
			d = c - '0'
		case 'a' <= c && c <= 'f':
			d = c - 'a' + 10
		case 'A' <= c && c <= 'F':
			d = c - 'A' + 10
		default:
			return nil, errors.Wrapf(gut.ErrInvalidArgument, "invalid hex digit %q at %d", c, skip+i)
		}
		digits = append(digits, d)
	}
	b, err := New(int64(len(digits)) * 4)
	if err != nil {
		return nil, err
	}
	for i, d := range digits {
		_ = b.PutBits(int64(i)*4, 4, uint64(d))
	}
	return b, nil
}
