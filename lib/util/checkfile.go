package util

import (
	"os"
)

// CheckFileExists reports whether fpath can be stat'd.
func CheckFileExists(fpath string) bool {
	_, e := os.Stat(fpath)
	return e == nil
}
