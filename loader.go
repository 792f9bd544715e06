package barbershop

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// LoadLedger reads the ledger stored at path.
//
// A missing or malformed file is not an error: an empty ledger is returned
// and a warning is logged. A malformed file is replaced by the next save.
//
// Any other read failure is returned as ErrPersistence, so that a file that
// exists but cannot be read is never silently replaced.
func LoadLedger(path string) (*Ledger, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, ledger %q does not exist, starting with an empty ledger", path)
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not read ledger %q: %w", ErrPersistence, path, err)
	}

	ledger, err := DecodeLedger(bytes.NewReader(data))
	if err != nil {
		log.Printf("warning, ledger %q is malformed, starting with an empty ledger, the next change will overwrite it: %v", path, err)
		return NewLedger(), nil
	}
	return ledger, nil
}

// SaveLedger overwrites the file at path with the whole ledger.
// The directory is created if needed. There is no backup of the previous file.
func SaveLedger(path string, ledger *Ledger) error {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	// Ensure the directory for the ledger file exists.
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: could not create directory for ledger %q: %w", ErrPersistence, path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: error opening ledger file %q for writing: %w", ErrPersistence, path, err)
	}
	if _, err := file.Write(buf.Bytes()); err != nil {
		file.Close()
		return fmt.Errorf("%w: error writing ledger file %q: %w", ErrPersistence, path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: error closing ledger file %q: %w", ErrPersistence, path, err)
	}
	return nil
}
