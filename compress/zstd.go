// Package compress decompresses zstd frames stored in blobs, such as the
// compressed blocks in a Chia full node database.
package compress

import (
	"sync"

	"github.com/klauspost/compress/zstd"

	"chiasql.lol/units"
)

// MaxDecodedSize bounds the memory a single frame may decode to, so a small
// malicious frame cannot exhaust memory.
const MaxDecodedSize = 256 * units.MiB

var (
	decoderOnce sync.Once
	decoder     *zstd.Decoder
	decoderErr  er
	encoderOnce sync.Once
	encoder     *zstd.Encoder
	encoderErr  er
)

// getDecoder returns the shared decoder. DecodeAll on it is safe for
// concurrent use, up to GOMAXPROCS calls running at once.
func getDecoder() (*zstd.Decoder, er) {
	decoderOnce.Do(func() {
		decoder, decoderErr = zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(0),
			zstd.WithDecoderMaxMemory(MaxDecodedSize),
		)
		chk.E(decoderErr)
	})
	return decoder, decoderErr
}

func getEncoder() (*zstd.Encoder, er) {
	encoderOnce.Do(func() {
		encoder, encoderErr = zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault))
		chk.E(encoderErr)
	})
	return encoder, encoderErr
}

// Decompress decodes all the zstd frames in b. A corrupt or truncated frame,
// or a bad frame checksum, is an error.
func Decompress(b by) (out by, err er) {
	var d *zstd.Decoder
	if d, err = getDecoder(); err != nil {
		return
	}
	if out, err = d.DecodeAll(b, nil); chk.D(err) {
		err = errorf.D("zstd: %w", err)
		return nil, err
	}
	return
}

// Compress encodes b as a single zstd frame.
func Compress(b by) (out by, err er) {
	var e *zstd.Encoder
	if e, err = getEncoder(); err != nil {
		return
	}
	out = e.EncodeAll(b, nil)
	log.T.F("compressed %d bytes to %d", len(b), len(out))
	return
}
