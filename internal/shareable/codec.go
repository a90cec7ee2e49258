package shareable

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// ErrBadLink wraps every decode failure: whatever stage broke, the caller
// only needs to know the link is unusable.
var ErrBadLink = errors.New("bad shareable link")

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(fmt.Sprintf("zstd encoder init: %v", err))
	}
	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecodedSize))
	if err != nil {
		panic(fmt.Sprintf("zstd decoder init: %v", err))
	}
}

// maxDecodedSize bounds decompression so a hostile blob cannot balloon.
// Links from the reference compressor declare a 2 MiB window, so the cap
// has to sit comfortably above that.
const maxDecodedSize = 8 << 20

// Encode serializes, compresses, and base64url-encodes a payload.
func Encode(p Payload) string {
	var w writer
	p.encodeTo(&w)
	compressed := zstdEncoder.EncodeAll(w.bytes(), nil)
	return base64.URLEncoding.EncodeToString(compressed)
}

// Decode is the inverse of Encode. It accepts both padded and unpadded
// base64url input since links circulate in both forms.
func Decode(blob string, p Payload) error {
	raw, err := base64.URLEncoding.DecodeString(blob)
	if err != nil {
		raw, err = base64.RawURLEncoding.DecodeString(blob)
	}
	if err != nil {
		return fmt.Errorf("%w: base64: %v", ErrBadLink, err)
	}

	plain, err := zstdDecoder.DecodeAll(raw, nil)
	if err != nil {
		return fmt.Errorf("%w: decompress: %v", ErrBadLink, err)
	}

	r := reader{buf: plain}
	p.decodeFrom(&r)
	if err := r.finish(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadLink, err)
	}
	return nil
}
