package scipatch_test

import (
	"bytes"
	"errors"
	"testing"

	"fb2sci/internal/scipatch"
)

func TestWritePatchLayout(t *testing.T) {
	bankA := bytes.Repeat([]byte{0xAA}, scipatch.BankDataLength)
	bankB := bytes.Repeat([]byte{0xBB}, scipatch.BankDataLength)

	var buf bytes.Buffer
	if err := scipatch.WritePatch(&buf, bankA, bankB); err != nil {
		t.Fatalf("WritePatch: %v", err)
	}

	out := buf.Bytes()
	if len(out) != scipatch.PatchLength {
		t.Fatalf("patch length %d, want %d", len(out), scipatch.PatchLength)
	}
	if !bytes.Equal(out[0:2], []byte{0x89, 0x00}) {
		t.Fatalf("resource tag %x, want 8900", out[0:2])
	}
	if !bytes.Equal(out[0xC02:0xC04], []byte{0xAB, 0xCD}) {
		t.Fatalf("bank separator %x, want ABCD", out[0xC02:0xC04])
	}
	if !bytes.Equal(out[2:0xC02], bankA) {
		t.Fatal("bank A data not written verbatim")
	}
	if !bytes.Equal(out[0xC04:], bankB) {
		t.Fatal("bank B data not written verbatim")
	}
}

func TestAppendPatchMatchesWritePatch(t *testing.T) {
	bankA := bytes.Repeat([]byte{0x10}, scipatch.BankDataLength)
	bankB := bytes.Repeat([]byte{0x20}, scipatch.BankDataLength)

	var buf bytes.Buffer
	if err := scipatch.WritePatch(&buf, bankA, bankB); err != nil {
		t.Fatalf("WritePatch: %v", err)
	}
	appended := scipatch.AppendPatch(nil, bankA, bankB)
	if !bytes.Equal(appended, buf.Bytes()) {
		t.Fatal("AppendPatch and WritePatch disagree")
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWritePatchWrapsWriteError(t *testing.T) {
	sentinel := errors.New("disk full")
	err := scipatch.WritePatch(failingWriter{err: sentinel}, nil, nil)
	if !errors.Is(err, sentinel) {
		t.Fatalf("got %v, want wrapped sentinel", err)
	}
}

func TestVoiceName(t *testing.T) {
	bank := make([]byte, scipatch.BankDataLength)
	copy(bank, "BRASS  ")
	copy(bank[scipatch.VoiceLength:], []byte{'E', 0x01, 'P', 'i', 'a', 'n', 'o'})

	if got := scipatch.VoiceName(bank, 0); got != "BRASS" {
		t.Fatalf("voice 0 name %q, want BRASS", got)
	}
	if got := scipatch.VoiceName(bank, 1); got != "E Piano" {
		t.Fatalf("voice 1 name %q, want control byte replaced", got)
	}
	if got := scipatch.VoiceName(bank, 48); got != "" {
		t.Fatalf("out-of-range voice name %q, want empty", got)
	}
}
