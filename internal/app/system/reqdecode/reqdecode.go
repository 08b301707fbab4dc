// internal/app/system/reqdecode/reqdecode.go
//
// Package reqdecode reads a request body sent as JSON, urlencoded form or
// multipart form into one flat set of values, then decodes those values into
// an input struct with gorilla/schema.
//
// Blank values are dropped, so a field sent as "" is treated as absent.
package reqdecode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dalemusser/chamberhub/internal/app/system/limits"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"
)

// multipartMemory is how much of a multipart body is kept in memory before
// parts spill to temporary files.
const multipartMemory = 8 << 20

// ErrMalformed is returned when the body cannot be parsed at all.
var ErrMalformed = errors.New("malformed request body")

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// Form is the parsed request body.
type Form struct {
	Values url.Values
	Files  map[string]*multipart.FileHeader
}

// Parse reads the request body. Files are only collected from multipart
// bodies. Bodies larger than the limits package allows (or than the route's
// AllowUpload cap for multipart) are reported as malformed.
func Parse(w http.ResponseWriter, r *http.Request) (*Form, error) {
	f := &Form{Values: url.Values{}, Files: map[string]*multipart.FileHeader{}}

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch ct {
	case "application/json":
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)
		}
		if err := f.readJSON(r); err != nil {
			return nil, err
		}
	case "multipart/form-data":
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, multipartLimit(r))
		}
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		f.addValues(r.MultipartForm.Value)
		for name, fhs := range r.MultipartForm.File {
			if len(fhs) > 0 && fhs[0].Size > 0 {
				f.Files[name] = fhs[0]
			}
		}
	default:
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormBodySize)
		}
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		f.addValues(r.PostForm)
	}
	return f, nil
}

type uploadLimitKey struct{}

// AllowUpload raises the multipart body cap on a route that accepts a file of
// up to maxFile bytes. Other routes keep limits.MaxFormBodySize.
func AllowUpload(maxFile int64) func(http.Handler) http.Handler {
	limit := maxFile + limits.MultipartOverhead
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), uploadLimitKey{}, limit)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func multipartLimit(r *http.Request) int64 {
	if n, ok := r.Context().Value(uploadLimitKey{}).(int64); ok {
		return n
	}
	return limits.MaxFormBodySize
}

func (f *Form) addValues(src map[string][]string) {
	for k, vs := range src {
		for _, v := range vs {
			if strings.TrimSpace(v) != "" {
				f.Values.Add(k, v)
			}
		}
	}
}

func (f *Form) readJSON(r *http.Request) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for k, raw := range body {
		switch v := raw.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				f.Values.Set(k, v)
			}
		case json.Number:
			f.Values.Set(k, v.String())
		case bool:
			f.Values.Set(k, strconv.FormatBool(v))
		}
	}
	return nil
}

// Decode fills dst (a pointer to an input struct with schema tags).
func (f *Form) Decode(dst any) error {
	return decoder.Decode(dst, f.Values)
}

// Has reports whether a non-blank value was sent for key.
func (f *Form) Has(key string) bool {
	_, ok := f.Values[key]
	return ok
}

// File returns the uploaded file for key, or nil.
func (f *Form) File(key string) *multipart.FileHeader {
	return f.Files[key]
}

// Bind parses the request and decodes it into dst in one step.
func Bind(w http.ResponseWriter, r *http.Request, dst any) (*Form, error) {
	f, err := Parse(w, r)
	if err != nil {
		return nil, err
	}
	if err := f.Decode(dst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return f, nil
}

// ID reads the {id} route parameter. Non-numeric or non-positive values
// report false and are answered like a missing record.
func ID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
