// Package export writes wordlist artifacts to disk, optionally bundled
// into an AES-256 encrypted zip archive.
package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	yzip "github.com/yeka/zip"
)

// WriteLines writes one entry per line. Entries are written in the order
// given; callers pass pre-sorted slices for deterministic files.
func WriteLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

// WriteAnalysis writes the analysis record as sorted key=value lines.
func WriteAnalysis(path string, analysis map[string]string) error {
	keys := make([]string, 0, len(analysis))
	for k := range analysis {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k + "=" + analysis[k]
	}
	return WriteLines(path, lines)
}

// WriteEncryptedZip bundles the given files into an AES-256 encrypted
// archive at path. Entry names are the file base names.
func WriteEncryptedZip(path, password string, files []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	zw := yzip.NewWriter(f)
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			zw.Close()
			f.Close()
			return fmt.Errorf("read %s: %w", file, err)
		}
		w, err := zw.Encrypt(filepath.Base(file), password, yzip.AES256Encryption)
		if err != nil {
			zw.Close()
			f.Close()
			return fmt.Errorf("add %s to archive: %w", file, err)
		}
		if _, err := w.Write(data); err != nil {
			zw.Close()
			f.Close()
			return fmt.Errorf("write %s to archive: %w", file, err)
		}
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalize %s: %w", path, err)
	}
	return f.Close()
}
