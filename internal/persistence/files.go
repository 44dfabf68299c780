package persistence

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/textretrieval/go-text-retrieval/index"
)

// Canonical index file names under the index directory.
const (
	InvertedIndexFile   = "invertedindex.txt"
	PositionalIndexFile = "positionalindex.txt"
)

// SaveInvertedIndex encodes ii and writes it to filePath, creating parent
// directories as needed.
func SaveInvertedIndex(filePath string, ii index.InvertedIndex) error {
	return saveFile(filePath, func(f *os.File) error {
		return EncodeInvertedIndex(f, ii)
	})
}

// SavePositionalIndex encodes pi and writes it to filePath, creating
// parent directories as needed.
func SavePositionalIndex(filePath string, pi index.PositionalIndex) error {
	return saveFile(filePath, func(f *os.File) error {
		return EncodePositionalIndex(f, pi)
	})
}

// LoadInvertedIndex reads and decodes the inverted index at filePath.
// If the file does not exist, it returns os.ErrNotExist, allowing callers
// to fall back to a fresh build.
func LoadInvertedIndex(filePath string) (index.InvertedIndex, error) {
	file, err := openFile(filePath)
	if err != nil {
		return nil, err
	}
	defer closeFile(file)
	ii, err := DecodeInvertedIndex(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode inverted index from %s: %w", filePath, err)
	}
	return ii, nil
}

// LoadPositionalIndex reads and decodes the positional index at filePath.
// If the file does not exist, it returns os.ErrNotExist.
func LoadPositionalIndex(filePath string) (index.PositionalIndex, error) {
	file, err := openFile(filePath)
	if err != nil {
		return nil, err
	}
	defer closeFile(file)
	pi, err := DecodePositionalIndex(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode positional index from %s: %w", filePath, err)
	}
	return pi, nil
}

// BothIndexFilesExist reports whether the canonical index files are both
// present under indexDir. Their presence triggers load-instead-of-rebuild.
func BothIndexFilesExist(indexDir string) bool {
	for _, name := range []string{InvertedIndexFile, PositionalIndexFile} {
		if _, err := os.Stat(filepath.Join(indexDir, name)); err != nil {
			return false
		}
	}
	return true
}

func saveFile(filePath string, encode func(*os.File) error) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	file, err := os.Create(filePath) // #nosec G304 -- filePath is controlled by application, not user input
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer closeFile(file)
	if err := encode(file); err != nil {
		return fmt.Errorf("failed to encode to file %s: %w", filePath, err)
	}
	return nil
}

func openFile(filePath string) (*os.File, error) {
	file, err := os.Open(filePath) // #nosec G304 -- filePath is controlled by application, not user input
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	return file, nil
}

func closeFile(file *os.File) {
	if err := file.Close(); err != nil {
		log.Printf("Warning: failed to close file %s: %v", file.Name(), err)
	}
}
