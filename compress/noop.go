package compress

// NoOpCompressor bypasses compression entirely.
//
// Useful when the payload is incompressible (random or encrypted data) or
// when codec overhead matters more than payload size.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice unchanged, without copying.
//
// The returned slice shares memory with the input; callers must not modify
// the input afterwards if they plan to use the result.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice unchanged, without copying.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
