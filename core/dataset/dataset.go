// Package dataset loads the pre-built JSON datasets the lexicon tool searches.
//
// A dataset is a JSON document whose top-level value is an array of objects.
// Files may optionally be gzip or XZ compressed; compression is detected from
// the leading magic bytes, not the file extension.
package dataset

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/JuniperLexicon/core/errors"
	"github.com/FocuswithJustin/JuniperLexicon/core/lexicon"
)

// Default dataset file names, resolved against the data directory.
const (
	DefaultConcordanceFile = "ref.json"
	DefaultLexiconFile     = "biblehub_data.json"
)

// Compression identifies how a dataset file is encoded on disk.
type Compression string

// Compression constants.
const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionXZ   Compression = "xz"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
)

// Injectable functions for testing
var (
	osOpen        = os.Open
	xzNewReader   = xz.NewReader
	gzipNewReader = gzip.NewReader
)

// DetectCompression inspects the leading bytes of a dataset.
func DetectCompression(magic []byte) Compression {
	switch {
	case bytes.HasPrefix(magic, xzMagic):
		return CompressionXZ
	case bytes.HasPrefix(magic, gzipMagic):
		return CompressionGzip
	default:
		return CompressionNone
	}
}

// Load reads the dataset at path and decodes its top-level array into a
// slice of T. Any failure is returned as an *errors.DataLoadError; no partial
// data is returned alongside an error.
func Load[T any](path string) ([]T, error) {
	f, err := osOpen(path)
	if err != nil {
		return nil, errors.NewDataLoad("open", path, err)
	}
	defer f.Close()

	r, closeFn, err := decompress(path, bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	defer closeFn()

	dec := json.NewDecoder(r)
	var records []T
	if err := dec.Decode(&records); err != nil {
		return nil, errors.NewDataLoad("decode", path, err)
	}
	if records == nil {
		// A literal null decodes without error; it is not an array of records.
		return nil, errors.NewDataLoad("decode", path, fmt.Errorf("top-level value is not an array"))
	}

	// Anything after the array is malformed input.
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.NewDataLoad("decode", path, fmt.Errorf("unexpected data after top-level array"))
	}

	return records, nil
}

// decompress wraps br in the decoder matching its magic bytes.
func decompress(path string, br *bufio.Reader) (io.Reader, func(), error) {
	magic, err := br.Peek(len(xzMagic))
	if err != nil && err != io.EOF {
		return nil, nil, errors.NewDataLoad("read", path, err)
	}

	switch DetectCompression(magic) {
	case CompressionXZ:
		xr, err := xzNewReader(br)
		if err != nil {
			return nil, nil, errors.NewDataLoad("decompress", path, err)
		}
		return xr, func() {}, nil
	case CompressionGzip:
		gr, err := gzipNewReader(br)
		if err != nil {
			return nil, nil, errors.NewDataLoad("decompress", path, err)
		}
		return gr, func() { gr.Close() }, nil
	default:
		return br, func() {}, nil
	}
}

// LoadConcordance loads a Strong's-number concordance dataset (ref.json).
func LoadConcordance(path string) ([]lexicon.ConcordanceEntry, error) {
	return Load[lexicon.ConcordanceEntry](path)
}

// LoadLexicon loads a transliteration-keyed lexicon dataset (biblehub_data.json).
func LoadLexicon(path string) ([]lexicon.LexiconEntry, error) {
	return Load[lexicon.LexiconEntry](path)
}

// Digest returns the hex BLAKE3-256 digest of the raw file at path.
func Digest(path string) (string, error) {
	f, err := osOpen(path)
	if err != nil {
		return "", errors.NewDataLoad("open", path, err)
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.NewDataLoad("read", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
