package util

import (
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// GatherAudioPaths lists files directly inside dir whose extension is one
// of exts (compared case-insensitively, no leading dot).
func GatherAudioPaths(dir string, exts []string) ([]string, error) {
	return GatherPaths(dir, exts, false)
}

// GatherChartPaths finds BMS charts anywhere below dir.
func GatherChartPaths(dir string) ([]string, error) {
	return GatherPaths(dir, []string{"bms", "bme", "bml", "pms"}, true)
}

func GatherPaths(dir string, exts []string, recursive bool) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if s == dir || recursive {
				return nil
			}
			return filepath.SkipDir
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(s), "."))
		if slices.Contains(exts, ext) {
			res = append(res, s)
		}
		return nil
	}
	if err := filepath.WalkDir(dir, walk); err != nil {
		return nil, err
	}
	return res, nil
}

func BaseNames(paths []string) []string {
	res := make([]string, 0, len(paths))
	for _, p := range paths {
		res = append(res, filepath.Base(p))
	}
	return res
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
