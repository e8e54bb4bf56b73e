package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// DecodeWAV parses a RIFF/WAVE container from r and returns the decoded
// sample buffer. Only 16-bit linear PCM data is supported; any other bit
// depth is rejected with a [FormatError].
//
// The parser expects the canonical chunk layout: "RIFF", the file size,
// "WAVE", then the "fmt " chunk. Every chunk after "fmt " that is not
// "data" is skipped by its declared length. The first "data" chunk is read
// in full and reinterpreted as little-endian int16 samples.
func DecodeWAV(r io.Reader) (*SampleBuffer, error) {
	var sig [4]byte

	if _, err := io.ReadFull(r, sig[:]); err != nil {
		return nil, formatErrf("wav", "reading RIFF signature", err)
	}
	if string(sig[:]) != "RIFF" {
		return nil, formatErr("wav", "not a RIFF file")
	}

	// RIFF file size, unused.
	if err := skip(r, 4); err != nil {
		return nil, formatErrf("wav", "reading RIFF size", err)
	}

	if _, err := io.ReadFull(r, sig[:]); err != nil {
		return nil, formatErrf("wav", "reading WAVE signature", err)
	}
	if string(sig[:]) != "WAVE" {
		return nil, formatErr("wav", "not a WAVE file")
	}

	if _, err := io.ReadFull(r, sig[:]); err != nil {
		return nil, formatErrf("wav", "reading fmt signature", err)
	}
	if string(sig[:]) != "fmt " {
		return nil, formatErr("wav", "missing fmt chunk")
	}

	var fmtHeader struct {
		FmtSize       uint32
		AudioFormat   uint16
		Channels      uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
	}
	if err := binary.Read(r, binary.LittleEndian, &fmtHeader); err != nil {
		return nil, formatErrf("wav", "reading fmt chunk", err)
	}
	if fmtHeader.BitsPerSample != 16 {
		return nil, formatErr("wav", fmt.Sprintf("unsupported bit depth %d (only 16-bit PCM)", fmtHeader.BitsPerSample))
	}

	// Extension bytes beyond the 16 standard fmt fields.
	if fmtHeader.FmtSize > 16 {
		if err := skip(r, int64(fmtHeader.FmtSize-16)); err != nil {
			return nil, formatErrf("wav", "skipping fmt extension", err)
		}
	}

	// Walk chunks until "data".
	var chunkSize uint32
	for {
		if _, err := io.ReadFull(r, sig[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, formatErr("wav", "missing data chunk")
			}
			return nil, formatErrf("wav", "reading chunk header", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &chunkSize); err != nil {
			return nil, formatErrf("wav", "reading chunk size", err)
		}
		if string(sig[:]) == "data" {
			break
		}
		if err := skip(r, int64(chunkSize)); err != nil {
			return nil, formatErrf("wav", fmt.Sprintf("skipping %q chunk", sig[:]), err)
		}
	}

	raw := make([]byte, chunkSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, formatErrf("wav", "truncated data chunk", err)
	}

	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
	}

	return &SampleBuffer{
		SampleRate: int(fmtHeader.SampleRate),
		Channels:   int(fmtHeader.Channels),
		Samples:    samples,
	}, nil
}

// LoadWAV opens and decodes the WAV file at path. A missing or unreadable
// file is returned as a wrapped os error; a malformed container as a
// [FormatError].
func LoadWAV(path string) (*SampleBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open wav %q: %w", path, err)
	}
	defer f.Close()

	buf, err := DecodeWAV(f)
	if err != nil {
		return nil, fmt.Errorf("audio: decode %q: %w", path, err)
	}
	return buf, nil
}

// skip discards exactly n bytes from r.
func skip(r io.Reader, n int64) error {
	written, err := io.CopyN(io.Discard, r, n)
	if err != nil {
		return err
	}
	if written != n {
		return errors.New("short skip")
	}
	return nil
}
