package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// directoryAccess lists the permissions a directory needs before statbook can
// list it and create files in it. Each is probed separately so a failure
// names what is missing.
var directoryAccess = []struct {
	mode uint32
	name string
}{
	{unix.R_OK, "read"},
	{unix.W_OK, "write"},
	{unix.X_OK, "search"},
}

// CheckDirectoryAccess passes when path is an existing directory the process
// can read, write, and search.
func CheckDirectoryAccess(name, path string) Result {
	result := Result{Name: name}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		result.Detail = path + ": missing"
		return result
	case err != nil:
		result.Detail = fmt.Sprintf("%s: %v", path, err)
		return result
	case !info.IsDir():
		result.Detail = path + ": not a directory"
		return result
	}

	var denied []string
	for _, access := range directoryAccess {
		if unix.Access(path, access.mode) != nil {
			denied = append(denied, access.name)
		}
	}
	if len(denied) > 0 {
		result.Detail = fmt.Sprintf("%s: no %s permission", path, strings.Join(denied, "/"))
		return result
	}

	result.Passed = true
	result.Detail = path + ": writable"
	return result
}
