package util

import (
	"bytes"
	"encoding/gob"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return errors.Wrapf(err, "could not create output dir %s", dir)
	}
	return nil
}

// OutputPath places name inside dir unless name is already a path.
func OutputPath(dir, name string) string {
	if filepath.IsAbs(name) || filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(dir, name)
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	return maps.Keys(m)
}

func GetSortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv[A constraints.Integer](a A, b A) A {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Ordered](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func CreateBinary(filename string, data any) error {
	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)
	if err := encoder.Encode(data); err != nil {
		return errors.Wrapf(err, "could not encode %s", filename)
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "write failed for file %s", filename)
	}
	return nil
}

func ReadBinary[A any](path string) (A, error) {
	var data A
	f, err := os.Open(path)
	if err != nil {
		return data, errors.Wrapf(err, "couldn't read file %s", path)
	}
	defer f.Close()

	decoder := gob.NewDecoder(f)
	if err := decoder.Decode(&data); err != nil {
		return data, errors.Wrapf(err, "could not decode binary file %s", path)
	}
	return data, nil
}
