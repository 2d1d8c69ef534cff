package codec

import (
	"fmt"
	"math/big"
	"strings"
)

// Alphabet50 is the 40-symbol text alphabet: space, digits, upper-case
// letters, and three control symbols standing in for tab, newline and
// backslash. A loose variant of DEC RADIX-50.
const Alphabet50 = " 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ\x1f\x17\x1b"

var rank50Replacer = strings.NewReplacer(
	"\t", "\x1f",
	"\n", "\x17",
	"\\", "\x1b",
)

var unrank50Replacer = strings.NewReplacer(
	"\x1f", "\t",
	"\x17", "\n",
	"\x1b", "\\",
)

// RankText maps text to its unique integer representative over Alphabet50.
//
// Input is folded to upper case, and tab/newline/backslash are substituted
// with their control stand-ins before ranking, so the mapping is lossy for
// case but 30-50% denser than octet ranking for plain messages. Returns an
// error for any rune outside the alphabet.
func RankText(s string) (*big.Int, error) {
	s = rank50Replacer.Replace(strings.ToUpper(s))

	symbols := make([]int, 0, len(s))
	for pos, r := range s {
		idx := strings.IndexRune(Alphabet50, r)
		if idx < 0 {
			return nil, fmt.Errorf("rune %q at position %d is not in the radix-50 alphabet", r, pos)
		}
		symbols = append(symbols, idx)
	}

	return Rank(symbols, len(Alphabet50))
}

// UnrankText recovers the text ranked i, undoing the control-symbol
// substitutions. Inverse of RankText up to its case folding.
func UnrankText(i *big.Int) (string, error) {
	symbols, err := Unrank(i, len(Alphabet50))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(symbols))
	for _, idx := range symbols {
		sb.WriteByte(Alphabet50[idx])
	}

	return unrank50Replacer.Replace(sb.String()), nil
}
