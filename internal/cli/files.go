package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// zstdSuffix marks files stored zstd-compressed on disk.
const zstdSuffix = ".zst"

func isCompressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), zstdSuffix)
}

// readInput returns the content of path, decompressing .zst files.
func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	var r io.Reader = f

	if isCompressed(path) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: zstd: %w", path, err)
		}
		defer dec.Close()

		r = dec
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return data, nil
}

// writeFile runs write against path, compressing .zst files.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	defer func() { err = errors.Join(err, f.Close()) }()

	if !isCompressed(path) {
		return write(f)
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("%s: zstd: %w", path, err)
	}

	return errors.Join(write(enc), enc.Close())
}
