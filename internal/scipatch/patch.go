package scipatch

import (
	"fmt"
	"io"
	"strings"
)

const (
	// VoiceLength is the size of one transcoded voice record.
	VoiceLength = 64
	// VoiceNameLength is the ASCII name prefix of a voice record.
	VoiceNameLength = 7
	// BankDataLength is the transcoded voice data per bank.
	BankDataLength = ExpectedInputLength / 2
	// PatchLength is the total size of an emitted patch resource.
	PatchLength = 2 + BankDataLength + 2 + BankDataLength
)

// ResourceTag opens every SCI0 FB-01 patch resource.
var ResourceTag = []byte{0x89, 0x00}

// BankSeparator sits between the two banks' voice data.
var BankSeparator = []byte{0xAB, 0xCD}

// WritePatch serializes the patch resource to w: resource tag, bank A data,
// bank separator, bank B data. No transformation is applied; the inputs are
// written as-is.
func WritePatch(w io.Writer, bankA, bankB []byte) error {
	for _, chunk := range [][]byte{ResourceTag, bankA, BankSeparator, bankB} {
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("write patch resource: %w", err)
		}
	}
	return nil
}

// AppendPatch appends the serialized patch resource to dst and returns the
// extended buffer.
func AppendPatch(dst, bankA, bankB []byte) []byte {
	dst = append(dst, ResourceTag...)
	dst = append(dst, bankA...)
	dst = append(dst, BankSeparator...)
	dst = append(dst, bankB...)
	return dst
}

// VoiceName returns the name of voice i within transcoded bank data, with
// trailing padding trimmed and unprintable characters replaced by spaces.
func VoiceName(bank []byte, i int) string {
	start := i * VoiceLength
	if start < 0 || start+VoiceNameLength > len(bank) {
		return ""
	}
	name := make([]byte, VoiceNameLength)
	for j, c := range bank[start : start+VoiceNameLength] {
		if c < 0x20 || c > 0x7E {
			c = ' '
		}
		name[j] = c
	}
	return strings.TrimRight(string(name), " ")
}
