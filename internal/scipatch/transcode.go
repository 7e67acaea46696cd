package scipatch

import (
	"fmt"
	"log/slog"

	"fb2sci/internal/logging"
)

// ExpectedInputLength is the extracted voice data size the transcoder expects
// per bank (48 voices x 128 nibblized bytes).
const ExpectedInputLength = 6144

// LengthMismatchError indicates the two banks' extracted voice data differ in
// size and cannot be transcoded in lockstep.
type LengthMismatchError struct {
	A, B int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("bank data lengths differ: bank A %d bytes, bank B %d bytes", e.A, e.B)
}

// Denibble merges each adjacent byte pair of src into one output byte: the
// second byte's low nibble becomes the high nibble, the first byte's low
// nibble the low nibble. The result is a fresh buffer of half the input
// length; src is not modified. A trailing unpaired byte is dropped.
func Denibble(src []byte) []byte {
	out := make([]byte, len(src)/2)
	for i := 0; i+1 < len(src); i += 2 {
		out[i/2] = (src[i+1]&0x0F)<<4 | src[i]&0x0F
	}
	return out
}

// DenibbleBanks transcodes both banks' extracted voice data. The inputs must
// be the same length; a length other than ExpectedInputLength is logged as a
// warning but still transcoded, since validated dumps can never produce one.
func DenibbleBanks(a, b []byte, logger *slog.Logger) ([]byte, []byte, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if len(a) != len(b) {
		return nil, nil, &LengthMismatchError{A: len(a), B: len(b)}
	}
	if len(a) != ExpectedInputLength {
		logger.Warn("bank data is not the expected size",
			logging.FieldSize, len(a), "expected", ExpectedInputLength)
	}
	return Denibble(a), Denibble(b), nil
}
