// Package pattern implements the PatternCodec: encoding and decoding of
// a five-position Wordle feedback pattern as a compact base-3 integer,
// plus its canonical G/Y/X wire string form.
package pattern

import (
	"fmt"

	"github.com/corvid-labs/wordlesolve/word"
)

// Trit is a single position's feedback value.
type Trit uint8

const (
	Gray Trit = iota
	Yellow
	Green
)

// Code is a five-trit pattern packed little-endian base-3 into [0,243).
// trit[0] is the units digit.
type Code uint8

// AllGreen is the unique solved pattern: every position Green.
const AllGreen Code = 242 // 2 + 2*3 + 2*9 + 2*27 + 2*81

// NumCodes is the total number of distinct patterns, 3^5.
const NumCodes = 243

// Encode packs five trits into a Code. The caller is responsible for
// every trit being in {Gray, Yellow, Green}; Encode is total over
// word.Letters-length input and performs no validation beyond that.
func Encode(trits [word.Letters]Trit) Code {
	var c uint16
	mult := uint16(1)
	for _, t := range trits {
		c += uint16(t) * mult
		mult *= 3
	}
	return Code(c)
}

// Decode unpacks a Code into its five trits. Decode is the total inverse
// of Encode over Code's domain [0, NumCodes).
func Decode(c Code) [word.Letters]Trit {
	var trits [word.Letters]Trit
	v := uint16(c)
	for i := 0; i < word.Letters; i++ {
		trits[i] = Trit(v % 3)
		v /= 3
	}
	return trits
}

// String renders a Trit as one of G/Y/X.
func (t Trit) String() string {
	switch t {
	case Green:
		return "G"
	case Yellow:
		return "Y"
	default:
		return "X"
	}
}

// String renders a Code in its canonical five-character wire form, e.g.
// "GYXXY", position 0 leftmost.
func (c Code) String() string {
	trits := Decode(c)
	var b [word.Letters]byte
	for i, t := range trits {
		b[i] = t.String()[0]
	}
	return string(b[:])
}

// Parse decodes the canonical wire string form (five characters over
// {G,Y,X}, position 0 leftmost) into a Code.
func Parse(s string) (Code, error) {
	if len(s) != word.Letters {
		return 0, fmt.Errorf("pattern: %q is not %d characters", s, word.Letters)
	}
	var trits [word.Letters]Trit
	for i := 0; i < word.Letters; i++ {
		switch s[i] {
		case 'G', 'g':
			trits[i] = Green
		case 'Y', 'y':
			trits[i] = Yellow
		case 'X', 'x':
			trits[i] = Gray
		default:
			return 0, fmt.Errorf("pattern: %q has an invalid character at position %d", s, i)
		}
	}
	return Encode(trits), nil
}
