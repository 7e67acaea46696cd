package sysex

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// Fixed layout of an FB-01 bank dump file.
const (
	// SignatureLength is the size of the sysex header at the top of a dump.
	SignatureLength = 7
	// DumpLength is the exact size of a bank dump file.
	DumpLength = 6363
	// VoiceDataOffset is where the first voice packet's data begins. The
	// two size-header bytes of the first packet sit just before it.
	VoiceDataOffset = 0x4C
	// VoiceCount is the number of voices held by one bank.
	VoiceCount = 48
	// PacketDataLength is the nibblized voice data carried per packet.
	PacketDataLength = 128
	// PacketStride separates consecutive packet data starts: 128 data
	// bytes, the packet's checksum, and the next packet's 2-byte size
	// header.
	PacketStride = PacketDataLength + 3
	// ExtractedLength is the concatenated voice data for a whole bank.
	ExtractedLength = VoiceCount * PacketDataLength
)

// BankID selects which of the FB-01's two voice banks a dump claims to hold.
// Its value is the final signature byte of the dump.
type BankID byte

const (
	BankA BankID = 0x00
	BankB BankID = 0x01
)

func (id BankID) String() string {
	switch id {
	case BankA:
		return "A"
	case BankB:
		return "B"
	default:
		return fmt.Sprintf("unknown(0x%02X)", byte(id))
	}
}

// Signature returns the 7-byte sysex header a dump for this bank must open
// with: F0 43 75 00 00 00 followed by the bank number.
func (id BankID) Signature() []byte {
	return []byte{0xF0, 0x43, 0x75, 0x00, 0x00, 0x00, byte(id)}
}

// ErrInvalidSignature indicates a file does not open with the expected FB-01
// bank dump header.
var ErrInvalidSignature = errors.New("missing expected sysex header")

// InvalidLengthError indicates a file with a valid signature is not exactly
// DumpLength bytes.
type InvalidLengthError struct {
	Actual int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("not the expected size (%d bytes): actual size %d", DumpLength, e.Actual)
}

// TruncatedReadError indicates a voice packet window would run past the end
// of the buffer. Validation guarantees this cannot happen for a dump that
// passed Validate; the check exists so extraction never reads out of bounds.
type TruncatedReadError struct {
	Voice  int
	Offset int
}

func (e *TruncatedReadError) Error() string {
	return fmt.Sprintf("voice packet %d at offset 0x%X exceeds buffer bounds", e.Voice, e.Offset)
}

// Bank is a validated FB-01 bank dump held wholly in memory.
type Bank struct {
	ID   BankID
	Data []byte
}

// Validate checks data against the fixed dump layout for bank id. The
// signature is checked before the length, matching the order failures are
// reported to users. Validate never mutates data and is safe to re-run.
func Validate(data []byte, id BankID) error {
	if len(data) < SignatureLength || !bytes.Equal(data[:SignatureLength], id.Signature()) {
		return fmt.Errorf("bank %s: %w", id, ErrInvalidSignature)
	}
	if len(data) != DumpLength {
		return &InvalidLengthError{Actual: len(data)}
	}
	return nil
}

// ReadBankFile reads path wholly into memory and validates it as a dump of
// bank id.
func ReadBankFile(path string, id BankID) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	if err := Validate(data, id); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Bank{ID: id, Data: data}, nil
}

// ReadDumpFile reads a bank dump whose bank is not known in advance,
// identifying it by the final signature byte.
func ReadDumpFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	for _, id := range []BankID{BankA, BankB} {
		if err := Validate(data, id); err == nil {
			return &Bank{ID: id, Data: data}, nil
		} else if !errors.Is(err, ErrInvalidSignature) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil, fmt.Errorf("%s: %w", path, ErrInvalidSignature)
}

// ExtractVoices returns the concatenated voice data of all 48 packets as a
// fresh 6144-byte slice. The source buffer is read only.
func (b *Bank) ExtractVoices() ([]byte, error) {
	out := make([]byte, 0, ExtractedLength)
	for voice := 0; voice < VoiceCount; voice++ {
		start := VoiceDataOffset + voice*PacketStride
		end := start + PacketDataLength
		if end > len(b.Data) {
			return nil, &TruncatedReadError{Voice: voice, Offset: start}
		}
		out = append(out, b.Data[start:end]...)
	}
	return out, nil
}
