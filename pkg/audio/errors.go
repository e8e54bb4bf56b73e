package audio

import (
	"errors"
	"fmt"
)

// FormatError reports a malformed or unsupported audio container: a missing
// RIFF/WAVE/fmt/data signature, an unsupported bit depth, or an MP3 stream
// the decoder cannot demux. File-system failures are not FormatErrors; they
// are returned as wrapped os errors so that errors.Is(err, os.ErrNotExist)
// and friends keep working.
type FormatError struct {
	// Format is the container being decoded ("wav" or "mp3").
	Format string

	// Reason describes what was wrong with the stream.
	Reason string

	// Err is the underlying decoder error, if any.
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("audio: %s: %s: %v", e.Format, e.Reason, e.Err)
	}
	return fmt.Sprintf("audio: %s: %s", e.Format, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

// IsFormatError reports whether any error in err's chain is a [FormatError].
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

func formatErr(format, reason string) error {
	return &FormatError{Format: format, Reason: reason}
}

func formatErrf(format, reason string, err error) error {
	return &FormatError{Format: format, Reason: reason, Err: err}
}
