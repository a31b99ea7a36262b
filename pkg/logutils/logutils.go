package logutils

import (
	"fmt"
	"path/filepath"
)

// ShortCallerFormatter trims the caller's file path down to the package directory and file name
func ShortCallerFormatter(_ uintptr, file string, line int) string {
	dir, name := filepath.Split(file)
	return fmt.Sprintf("%s:%d", filepath.Join(filepath.Base(dir), name), line)
}
