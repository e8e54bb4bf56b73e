// Package audio decodes WAV and MP3 files into raw 16-bit PCM sample
// buffers for the Voicelink analysis pipeline. Decoding is eager: the whole
// clip is read into memory in one pass and handed to the caller as an
// immutable [SampleBuffer]. The package keeps no state between calls, so
// independent workers may decode concurrently without coordination.
package audio

import (
	"path/filepath"
	"strings"
)

// Load decodes the audio file at path, dispatching on the file extension:
// ".mp3" (case-insensitive) selects the MP3 decoder, everything else is
// treated as a WAV container.
func Load(path string) (*SampleBuffer, error) {
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		return LoadMP3(path)
	}
	return LoadWAV(path)
}
