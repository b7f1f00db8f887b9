package route

import (
	"strings"

	"github.com/wayfind-dev/wayfind/internal/errors"
)

// Canonicalization errors. These indicate hostile or nonsensical input; a
// path that merely fails to match any route is not an error.
var (
	ErrBackslashInPath = errors.New(errors.CodeInvalidPath, errors.CategoryRouting, "route: path contains backslash")
	ErrNullByteInPath  = errors.New(errors.CodeInvalidPath, errors.CategoryRouting, "route: path contains null byte")
	ErrPathEscapesRoot = errors.New(errors.CodeInvalidPath, errors.CategoryRouting, "route: path escapes root via ..")
)

// Canonicalize normalizes a path before matching. The rule, applied once and
// uniformly on every navigation:
//
//   - strip any query string (returned separately)
//   - ensure a leading slash
//   - collapse repeated slashes (/a//b -> /a/b)
//   - drop "." segments and resolve ".." segments
//   - strip the trailing slash except for root, so /about and /about/ are
//     the same route
//
// Backslashes, NUL bytes, and ".." escaping the root are rejected.
func Canonicalize(input string) (path, query string, err error) {
	if input == "" {
		return "/", "", nil
	}

	path, query, _ = strings.Cut(input, "?")

	if strings.Contains(path, "\\") {
		return "", "", ErrBackslashInPath
	}
	if strings.Contains(path, "\x00") {
		return "", "", ErrNullByteInPath
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var kept []string
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(kept) == 0 {
				return "", "", ErrPathEscapesRoot
			}
			kept = kept[:len(kept)-1]
		default:
			kept = append(kept, seg)
		}
	}

	return "/" + strings.Join(kept, "/"), query, nil
}

// Split returns the canonical path's segments, nil for root.
func Split(canonPath string) []string {
	trimmed := strings.Trim(canonPath, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
