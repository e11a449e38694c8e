package file

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/keysound/chart"
	"github.com/pkg/errors"
)

// BmsFile is a chart document together with the path it was read from.
type BmsFile struct {
	Path  string
	Chart *chart.Document
}

func Open(path string) (*BmsFile, error) {
	doc, err := load(path)
	if err != nil {
		return nil, err
	}
	return &BmsFile{Path: path, Chart: doc}, nil
}

func ReadLines(r io.Reader) ([]string, error) {
	var res []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		res = append(res, scanner.Text())
	}
	return res, scanner.Err()
}

func load(path string) (*chart.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", path)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", path)
	}
	doc, err := chart.Parse(lines)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse %s", path)
	}
	return doc, nil
}

// Reload re-reads the chart from disk. On failure the old document is
// dropped and replaced with an empty one, never kept around stale.
func (b *BmsFile) Reload() error {
	doc, err := load(b.Path)
	if err != nil {
		b.Chart = chart.New()
		return err
	}
	b.Chart = doc
	return nil
}

// Save writes the chart to a temp file next to Path and renames it over
// Path. A failed write leaves the file on disk untouched.
func (b *BmsFile) Save() error {
	dir := filepath.Dir(b.Path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(b.Path), uuid.New().String()))

	mode := os.FileMode(0644)
	if info, err := os.Stat(b.Path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(tmp, b.Chart.Bytes(), mode); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "could not write %s", tmp)
	}
	if err := os.Rename(tmp, b.Path); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "could not replace %s", b.Path)
	}
	return nil
}

// BackupPath is "<dir>/<stem><suffix>.bms".
func (b *BmsFile) BackupPath(suffix string) string {
	base := filepath.Base(b.Path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(b.Path), stem+suffix+".bms")
}

// Backup copies the file on disk, not the in-memory document.
func (b *BmsFile) Backup(suffix string) (string, error) {
	dst := b.BackupPath(suffix)
	src, err := os.Open(b.Path)
	if err != nil {
		return "", errors.Wrapf(err, "could not open %s for backup", b.Path)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", errors.Wrapf(err, "could not create backup %s", dst)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return "", errors.Wrapf(err, "could not copy to %s", dst)
	}
	if err := out.Close(); err != nil {
		return "", errors.Wrapf(err, "could not close backup %s", dst)
	}
	return dst, nil
}

// Dir is where the chart's audio files live.
func (b *BmsFile) Dir() string {
	return filepath.Dir(b.Path)
}

// AudioPath resolves a declared file name against the chart directory.
// BMS files written on Windows use backslashes.
func (b *BmsFile) AudioPath(name string) string {
	return filepath.Join(b.Dir(), filepath.FromSlash(strings.ReplaceAll(name, `\`, "/")))
}
