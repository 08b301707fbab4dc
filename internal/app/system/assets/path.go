// internal/app/system/assets/path.go
package assets

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// objectPath generates a unique stored path:
//
//	<namespace>/<uuid8>-<sanitized filename>
//
// The client's extension is dropped; the stored extension always comes from
// the sniffed media type, since the public disk serves objects with a
// Content-Type derived from it.
func objectPath(namespace, filename, contentType string) string {
	name := sanitizeFilename(filename)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" {
		name = "file"
	}
	if mt := mimetype.Lookup(contentType); mt != nil {
		name += mt.Extension()
	}
	return path.Join(namespace, fmt.Sprintf("%s-%s", uuid.New().String()[:8], name))
}

// sanitizeFilename keeps letters, digits, '-', '_' and '.', replacing
// everything else with '_', and caps the length at 100 bytes keeping the
// extension.
func sanitizeFilename(filename string) string {
	filename = filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if filename == "." || filename == "/" {
		filename = ""
	}

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}
	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}
