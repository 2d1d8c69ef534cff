// Package codec layers byte- and text-to-integer pre-encodings on top of the
// core engine.
//
// Each ranking here is a self-delimiting bijection between non-negative
// integers and variable-length strings over a fixed alphabet: the string's
// length is recovered from the integer itself by epoch-fitting over the
// count of length-l strings (k^l), so no terminator or length prefix exists.
//
//   - Rank/Unrank: generic base-k symbol strings
//   - RankBytes/UnrankBytes: octet strings (k = 256)
//   - RankText/UnrankText: radix-50 style text over a 40-symbol alphabet
//     (space, digits, upper-case letters, and three control substitutes),
//     30-50% denser than octets for plain messages
//
// Packer optionally compresses a payload before ranking it, shrinking the
// resulting integer for compressible data.
//
// The integers produced here feed bagcodec.Encode / rank.IntegerToVarMultiset;
// none of the core bijections depend on this package.
package codec
