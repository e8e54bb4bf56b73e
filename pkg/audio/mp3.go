package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// mp3Channels is fixed by the decoder: go-mp3 always emits 16-bit stereo
// regardless of the source stream's channel mode.
const mp3Channels = 2

// DecodeMP3 eagerly decodes an entire MP3 bitstream from r into a flat PCM
// buffer. There is no streaming mode; the whole clip is materialised in one
// pass, which is acceptable for meeting-length recordings.
//
// A stream that cannot be demuxed, or that declares a non-empty sample
// count but produces no output, is rejected with a [FormatError].
func DecodeMP3(r io.Reader) (*SampleBuffer, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, formatErrf("mp3", "opening stream", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, formatErrf("mp3", "decoding stream", err)
	}

	// Length is the declared decoded size in bytes (-1 when the source is
	// not seekable). A declared payload with nothing decoded is a failure,
	// not a silent empty buffer.
	if dec.Length() > 0 && len(raw) == 0 {
		return nil, formatErr("mp3", "declared samples but empty decode output")
	}

	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
	}

	return &SampleBuffer{
		SampleRate: dec.SampleRate(),
		Channels:   mp3Channels,
		Samples:    samples,
	}, nil
}

// LoadMP3 opens and decodes the MP3 file at path. A missing or unreadable
// file is returned as a wrapped os error; an undecodable bitstream as a
// [FormatError].
func LoadMP3(path string) (*SampleBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open mp3 %q: %w", path, err)
	}
	defer f.Close()

	buf, err := DecodeMP3(f)
	if err != nil {
		return nil, fmt.Errorf("audio: decode %q: %w", path, err)
	}
	return buf, nil
}
