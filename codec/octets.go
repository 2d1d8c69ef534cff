package codec

import (
	"fmt"
	"math/big"

	"github.com/bagcodec/bagcodec/compress"
	"github.com/bagcodec/bagcodec/format"
	"github.com/bagcodec/bagcodec/internal/options"
)

// RankBytes maps an octet string to its unique integer representative
// (base-256 ranking; every byte is a valid symbol, so this cannot fail).
func RankBytes(data []byte) *big.Int {
	symbols := make([]int, len(data))
	for pos, b := range data {
		symbols[pos] = int(b)
	}

	// Only symbol-range errors are possible, and bytes are always in range.
	value, _ := Rank(symbols, 256)

	return value
}

// UnrankBytes recovers the octet string ranked i. Inverse of RankBytes.
func UnrankBytes(i *big.Int) ([]byte, error) {
	symbols, err := Unrank(i, 256)
	if err != nil {
		return nil, err
	}

	data := make([]byte, len(symbols))
	for pos, c := range symbols {
		data[pos] = byte(c)
	}

	return data, nil
}

// Packer converts byte payloads to integers and back, optionally running
// them through a compression codec first. Compression shrinks the integer
// (and the multiset it will encode to) for compressible payloads.
type Packer struct {
	compression format.CompressionType
	codec       compress.Codec
}

// PackerOption configures a Packer.
type PackerOption = options.Option[*Packer]

// WithCompression selects the compression applied before ranking.
// The default is format.CompressionNone.
func WithCompression(ct format.CompressionType) PackerOption {
	return options.NoError(func(p *Packer) {
		p.compression = ct
	})
}

// NewPacker creates a Packer. Fails if the selected compression type has no
// codec.
func NewPacker(opts ...PackerOption) (*Packer, error) {
	p := &Packer{compression: format.CompressionNone}
	if err := options.Apply(p, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(p.compression)
	if err != nil {
		return nil, err
	}
	p.codec = codec

	return p, nil
}

// Compression returns the configured compression type.
func (p *Packer) Compression() format.CompressionType {
	return p.compression
}

// Pack compresses data with the configured codec and ranks the result.
func (p *Packer) Pack(data []byte) (*big.Int, error) {
	compressed, err := p.codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("compressing payload: %w", err)
	}

	return RankBytes(compressed), nil
}

// Unpack unranks i and decompresses the result. Inverse of Pack; the Packer
// must be configured with the same compression the payload was packed with.
func (p *Packer) Unpack(i *big.Int) ([]byte, error) {
	compressed, err := UnrankBytes(i)
	if err != nil {
		return nil, err
	}

	data, err := p.codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("decompressing payload: %w", err)
	}

	return data, nil
}
