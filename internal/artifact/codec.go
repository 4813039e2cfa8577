// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package artifact

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// storedFile is the on-disk and on-wire format: a gob envelope holding the
// checksum of the raw bundle bytes and their gzip-compressed form.
type storedFile struct {
	Checksum       string
	CompressedData []byte
}

// Encode serializes a bundle to the stored format.
func Encode(w io.Writer, b *Bundle) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("refusing to encode invalid bundle: %w", err)
	}

	var raw bytes.Buffer
	if err := gob.NewEncoder(&raw).Encode(b); err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}

	hash := sha256.Sum256(raw.Bytes())

	var compressed bytes.Buffer
	gzw := gzip.NewWriter(&compressed)
	if _, err := gzw.Write(raw.Bytes()); err != nil {
		return fmt.Errorf("compress bundle: %w", err)
	}
	if err := gzw.Close(); err != nil {
		return fmt.Errorf("finalize compression: %w", err)
	}

	sf := storedFile{
		Checksum:       hex.EncodeToString(hash[:]),
		CompressedData: compressed.Bytes(),
	}
	if err := gob.NewEncoder(w).Encode(sf); err != nil {
		return fmt.Errorf("write bundle envelope: %w", err)
	}

	return nil
}

// Decode reads a bundle from the stored format, verifying the checksum and
// validating the result before returning it.
func Decode(r io.Reader) (*Bundle, error) {
	var sf storedFile
	if err := gob.NewDecoder(r).Decode(&sf); err != nil {
		return nil, fmt.Errorf("read bundle envelope: %w", err)
	}

	gzr, err := gzip.NewReader(bytes.NewReader(sf.CompressedData))
	if err != nil {
		return nil, fmt.Errorf("decompress bundle: %w", err)
	}
	defer func() { _ = gzr.Close() }()

	raw, err := io.ReadAll(gzr)
	if err != nil {
		return nil, fmt.Errorf("read decompressed bundle: %w", err)
	}

	hash := sha256.Sum256(raw)
	if checksum := hex.EncodeToString(hash[:]); checksum != sf.Checksum {
		return nil, fmt.Errorf("checksum mismatch: expected %s, got %s", sf.Checksum, checksum)
	}

	var b Bundle
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}

	return &b, nil
}

// WriteFile encodes a bundle to path. Used by the offline training export
// and by tests building fixtures.
func WriteFile(path string, b *Bundle) error {
	f, err := os.Create(path) //nolint:gosec // path comes from trusted config
	if err != nil {
		return fmt.Errorf("create bundle file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Encode(f, b)
}
