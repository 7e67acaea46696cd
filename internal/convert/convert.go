package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"fb2sci/internal/fileutil"
	"fb2sci/internal/logging"
	"fb2sci/internal/scipatch"
	"fb2sci/internal/sysex"
)

// ErrAborted indicates the user declined to overwrite an existing output
// file. Nothing has been written when it is returned.
var ErrAborted = errors.New("aborted by user")

// Converter runs the conversion pipeline. Confirm is consulted when the
// output path already exists; a nil Confirm declines every overwrite. The
// CLI wires an interactive prompt here, tests wire a stub.
type Converter struct {
	Logger  *slog.Logger
	Confirm func(path string) (bool, error)
}

// Convert reads the bank A and bank B dump files, transcodes them, and
// writes the patch resource to outPath. Validation failures are fatal and
// occur before anything touches the output path.
func (c *Converter) Convert(bankAPath, bankBPath, outPath string) error {
	logger := c.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.FieldRunID, uuid.NewString())

	bankA, err := sysex.ReadBankFile(bankAPath, sysex.BankA)
	if err != nil {
		return err
	}
	logger.Debug("bank dump validated", logging.FieldBank, bankA.ID.String(), logging.FieldFile, bankAPath)

	bankB, err := sysex.ReadBankFile(bankBPath, sysex.BankB)
	if err != nil {
		return err
	}
	logger.Debug("bank dump validated", logging.FieldBank, bankB.ID.String(), logging.FieldFile, bankBPath)

	rawA, err := bankA.ExtractVoices()
	if err != nil {
		return fmt.Errorf("extract bank A voices: %w", err)
	}
	rawB, err := bankB.ExtractVoices()
	if err != nil {
		return fmt.Errorf("extract bank B voices: %w", err)
	}

	dataA, dataB, err := scipatch.DenibbleBanks(rawA, rawB, logger)
	if err != nil {
		return err
	}

	if fileutil.Exists(outPath) {
		ok, err := c.confirmOverwrite(outPath)
		if err != nil {
			return fmt.Errorf("confirm overwrite: %w", err)
		}
		if !ok {
			return fmt.Errorf("%s exists: %w", outPath, ErrAborted)
		}
	}

	lock := flock.New(outPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock output path: %w", err)
	}
	if !locked {
		return fmt.Errorf("output path %s is locked by another run", outPath)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	patch := scipatch.AppendPatch(make([]byte, 0, scipatch.PatchLength), dataA, dataB)
	if err := fileutil.WriteFileAtomic(outPath, patch, 0o644); err != nil {
		return fmt.Errorf("write patch file: %w", err)
	}

	logger.Info("patch created", logging.FieldFile, outPath, logging.FieldSize, len(patch))
	return nil
}

func (c *Converter) confirmOverwrite(path string) (bool, error) {
	if c.Confirm == nil {
		return false, nil
	}
	return c.Confirm(path)
}
