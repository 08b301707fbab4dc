// internal/app/system/assets/media.go
package assets

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/dalemusser/chamberhub/internal/app/system/inputval"
	"github.com/gabriel-vasile/mimetype"
)

type rule struct {
	kind     string // "image" or "video"
	maxBytes int64
	types    []string
}

var imageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/bmp",
	"image/gif",
	"image/svg+xml",
	"image/webp",
}

var videoTypes = []string{
	"video/mp4",
	"video/x-msvideo",
	"video/x-matroska",
	"video/quicktime",
	"video/mpeg",
	"video/3gpp",
	"video/x-ms-wmv",
}

func imageRule(max int64) rule { return rule{kind: "image", maxBytes: max, types: imageTypes} }
func videoRule(max int64) rule { return rule{kind: "video", maxBytes: max, types: videoTypes} }

// CheckImage validates an image upload for field. A nil header passes when
// the field is optional. Violations are added to res and nil is returned.
func (m *Manager) CheckImage(field string, fh *multipart.FileHeader, required bool, res *inputval.Result) *Upload {
	return m.check(m.image, field, fh, required, res)
}

// CheckVideo validates a video upload for field.
func (m *Manager) CheckVideo(field string, fh *multipart.FileHeader, required bool, res *inputval.Result) *Upload {
	return m.check(m.video, field, fh, required, res)
}

func (m *Manager) check(rl rule, field string, fh *multipart.FileHeader, required bool, res *inputval.Result) *Upload {
	if fh == nil {
		if required {
			res.Add(field, fmt.Sprintf("The %s field is required.", field))
		}
		return nil
	}

	ok := true
	if fh.Size > rl.maxBytes {
		res.Add(field, fmt.Sprintf("The %s field must not be greater than %d kilobytes.", field, rl.maxBytes/1024))
		ok = false
	}

	mt, err := sniff(fh)
	if err != nil || !matches(mt, rl.types) {
		if rl.kind == "image" {
			res.Add(field, fmt.Sprintf("The %s field must be an image.", field))
		} else {
			res.Add(field, fmt.Sprintf("The %s field must be a file of type: %s.", field, strings.Join(rl.types, ", ")))
		}
		ok = false
	}
	if !ok {
		return nil
	}
	return &Upload{header: fh, contentType: canonical(mt, rl.types)}
}

func sniff(fh *multipart.FileHeader) (*mimetype.MIME, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return mimetype.DetectReader(f)
}

func matches(mt *mimetype.MIME, types []string) bool {
	if mt == nil {
		return false
	}
	for m := mt; m != nil; m = m.Parent() {
		for _, t := range types {
			if m.Is(t) {
				return true
			}
		}
	}
	return false
}

// canonical returns the allowed type mt matched, without parameters.
func canonical(mt *mimetype.MIME, types []string) string {
	for m := mt; m != nil; m = m.Parent() {
		for _, t := range types {
			if m.Is(t) {
				return t
			}
		}
	}
	return mt.String()
}
