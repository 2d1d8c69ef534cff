package compress

import (
	"bytes"
	"testing"

	"github.com/bagcodec/bagcodec/format"
	"github.com/stretchr/testify/require"
)

func testPayload() []byte {
	// Repetitive payload so every real codec actually shrinks it.
	return bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 64)
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err, "codec %s", ct)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported compression type")
}

func TestCodec_RoundTrip(t *testing.T) {
	payload := testPayload()

	tests := []struct {
		name  string
		codec Codec
	}{
		{"noop", NewNoOpCompressor()},
		{"zstd", NewZstdCompressor()},
		{"s2", NewS2Compressor()},
		{"lz4", NewLZ4Compressor()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := tt.codec.Compress(payload)
			require.NoError(t, err)

			restored, err := tt.codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestCodec_Shrinks(t *testing.T) {
	payload := testPayload()

	for _, tt := range []struct {
		name  string
		codec Codec
	}{
		{"zstd", NewZstdCompressor()},
		{"s2", NewS2Compressor()},
		{"lz4", NewLZ4Compressor()},
	} {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := tt.codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, codec := range []Codec{
		NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor(),
	} {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Nil(t, compressed)

		restored, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Nil(t, restored)
	}
}

func TestLZ4_CorruptedInput(t *testing.T) {
	codec := NewLZ4Compressor()
	_, err := codec.Decompress([]byte{0xFF, 0xFE, 0xFD, 0xFC, 0xFB})
	require.Error(t, err)
}
