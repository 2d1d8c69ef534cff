package compress

// ZstdCompressor provides Zstandard compression, the best ratio of the
// built-in codecs.
//
// Two implementations are selected at build time: cgo builds bind the
// reference C library via valyala/gozstd, pure-Go builds (CGO_ENABLED=0 or
// cross-compilation) use klauspost/compress/zstd. Both produce standard zstd
// frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
