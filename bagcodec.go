// Package bagcodec losslessly converts arbitrary-precision integers into
// multisets ("bags") over a finite alphabet, and back.
//
// The engine is a stack of bijections: an integer is epoch-fitted to find
// the bag's size, decoded through the combinatorial number system into a
// combination, and shifted into a multiset of alphabet indices. Every stage
// is exactly invertible, so the bag's size never needs to be stored; it is
// recovered structurally from the integer itself.
//
// # Basic Usage
//
// Encoding an integer over a 6-symbol alphabet and back:
//
//	import "github.com/bagcodec/bagcodec"
//
//	bag, _ := bagcodec.Encode(big.NewInt(7), 6)
//	for idx := range bag.All() {
//	    fmt.Println(idx) // alphabet indices in [0, 6)
//	}
//	i, _ := bagcodec.Decode(bag, 6) // 7 again
//
// Byte payloads pre-encode through the codec package:
//
//	bag, _ := bagcodec.EncodeBytes([]byte("hi"), 6)
//	data, _ := bagcodec.DecodeBytes(bag, 6)
//
// # Alphabets
//
// The engine never inspects alphabet semantics: a consumer supplies a fixed
// cardinality n and its own invertible mapping between [0, n) and domain
// values, mapping each bag index through it. Compound alphabets built from
// several independent sub-choices can pack their indices with the mixedradix
// package.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the rank and
// codec packages, covering the common cases. For fine-grained control over
// fixed-size bijections, combinations, custom epoch sequences and compression
// choices, use the rank, multiset, codec, mixedradix, search and epoch
// packages directly.
package bagcodec

import (
	"math/big"

	"github.com/bagcodec/bagcodec/codec"
	"github.com/bagcodec/bagcodec/multiset"
	"github.com/bagcodec/bagcodec/rank"
)

// Encode converts a non-negative integer into a multiset of alphabet
// indices in [0, n). The multiset's size is determined by the integer.
func Encode(data *big.Int, n int) (*multiset.Multiset, error) {
	return rank.IntegerToVarMultiset(data, n)
}

// Decode recovers the integer a multiset of alphabet indices encodes.
// Exact inverse of Encode for the same n.
func Decode(bag *multiset.Multiset, n int) (*big.Int, error) {
	return rank.VarMultisetToInteger(bag, n)
}

// EncodeBytes converts a byte payload into a multiset of alphabet indices
// in [0, n), pre-encoding the bytes as a self-delimiting octet-string rank.
func EncodeBytes(data []byte, n int) (*multiset.Multiset, error) {
	return Encode(codec.RankBytes(data), n)
}

// DecodeBytes recovers the byte payload a multiset encodes. Exact inverse
// of EncodeBytes for the same n.
func DecodeBytes(bag *multiset.Multiset, n int) ([]byte, error) {
	i, err := Decode(bag, n)
	if err != nil {
		return nil, err
	}

	return codec.UnrankBytes(i)
}

// EncodeText converts text into a multiset of alphabet indices in [0, n),
// pre-encoding it in the dense radix-50 alphabet. Text is folded to upper
// case; see codec.RankText.
func EncodeText(text string, n int) (*multiset.Multiset, error) {
	i, err := codec.RankText(text)
	if err != nil {
		return nil, err
	}

	return Encode(i, n)
}

// DecodeText recovers the text a multiset encodes. Exact inverse of
// EncodeText for the same n, up to RankText's case folding.
func DecodeText(bag *multiset.Multiset, n int) (string, error) {
	i, err := Decode(bag, n)
	if err != nil {
		return "", err
	}

	return codec.UnrankText(i)
}
