// Package compress provides compression codecs for byte payloads that are
// about to be ranked into integers.
//
// Ranking an octet string treats every byte as a base-256 digit, so the
// integer (and therefore the multiset it encodes to) grows with the payload
// length. Compressing the payload first shrinks the integer for compressible
// data at the cost of a codec round trip on decode.
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Four codecs are built in, selected by format.CompressionType:
//
//   - None: pass-through, for incompressible or already-compressed payloads
//   - Zstd: best ratio; cgo builds use valyala/gozstd, pure-Go builds use
//     klauspost/compress/zstd
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// All codecs are stateless values and safe for concurrent use; internal
// encoder/decoder state is pooled.
package compress
