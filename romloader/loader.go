// Package romloader loads a Super Mario 64 ROM image for the sm64
// wrapper. It accepts plain .z64/.v64/.n64 files as well as compressed
// archives (ZIP, 7z, gzip, tar.gz, RAR) containing one, auto-detected
// via magic bytes, and always returns the image in big-endian (.z64)
// order — the only order the wrapper's SHA-1 gate accepts.
package romloader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Magic bytes for archive format detection
var (
	magicZIP    = []byte{0x50, 0x4B, 0x03, 0x04}
	magicZIPEnd = []byte{0x50, 0x4B, 0x05, 0x06} // empty zip
	magic7z     = []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}
	magicGzip   = []byte{0x1F, 0x8B}
	magicRAR    = []byte{0x52, 0x61, 0x72, 0x21} // "Rar!"
)

// N64 image extensions, one per dump byte order.
var romExtensions = []string{".z64", ".v64", ".n64"}

// Maximum image size. The SM64 cartridge is exactly 8MB.
const maxROMSize = 8 * 1024 * 1024

// ErrNoROMFile is returned when no N64 image is found in an archive
var ErrNoROMFile = errors.New("no N64 ROM file found in archive")

// ErrUnsupportedFormat is returned for unrecognized file formats
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrFileTooLarge is returned when extracted content exceeds the size limit
var ErrFileTooLarge = errors.New("file exceeds maximum size limit")

// formatType represents the detected file format
type formatType int

const (
	formatUnknown formatType = iota
	formatRaw
	formatZIP
	format7z
	formatGzip
	formatRAR
)

// Load reads an N64 ROM image from a file path. Compressed archives are
// detected via magic bytes and the first .z64/.v64/.n64 entry is
// extracted. The image is normalized to big-endian order regardless of
// how it was dumped.
//
// Returns the ROM data, the image filename (basename only, useful for
// display), and any error.
func Load(path string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	// Read header for magic byte detection
	header := make([]byte, 16)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return nil, "", fmt.Errorf("failed to read file header: %w", err)
	}
	header = header[:n]

	var data []byte
	var name string

	switch detectFormat(header, path) {
	case formatRaw:
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, "", fmt.Errorf("failed to seek file: %w", err)
		}
		data, err = limitedRead(f)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read ROM: %w", err)
		}
		name = filepath.Base(path)

	case formatZIP:
		data, name, err = extractFromZIP(path)

	case format7z:
		data, name, err = extractFrom7z(path)

	case formatGzip:
		data, name, err = extractFromGzip(path)

	case formatRAR:
		data, name, err = extractFromRAR(path)

	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, "", err
	}

	data, err = normalizeByteOrder(data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", name, err)
	}
	return data, name, nil
}

// detectFormat determines the file format based on magic bytes, falling
// back to the path's extension.
func detectFormat(header []byte, path string) formatType {
	if len(header) >= 4 {
		if bytes.HasPrefix(header, magicZIP) || bytes.HasPrefix(header, magicZIPEnd) {
			return formatZIP
		}
		if bytes.HasPrefix(header, magicRAR) {
			return formatRAR
		}
	}
	if len(header) >= 6 && bytes.HasPrefix(header, magic7z) {
		return format7z
	}
	if len(header) >= 2 && bytes.HasPrefix(header, magicGzip) {
		return formatGzip
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return formatZIP
	case ".7z":
		return format7z
	case ".gz", ".tgz":
		return formatGzip
	case ".rar":
		return formatRAR
	}

	if isROMFile(path) {
		return formatRaw
	}

	return formatUnknown
}

// isROMFile checks if a filename has an N64 image extension (case-insensitive)
func isROMFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range romExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// limitedRead reads from r up to maxROMSize bytes, returning an error if exceeded
func limitedRead(r io.Reader) ([]byte, error) {
	lr := io.LimitReader(r, maxROMSize+1)
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if len(data) > maxROMSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
