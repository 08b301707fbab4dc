// internal/app/system/limits/limits.go
package limits

// Request body size limits. Multipart bodies share MaxFormBodySize unless the
// route allows an upload, in which case the file ceiling plus
// MultipartOverhead applies.
const (
	// MaxJSONBodySize caps application/json request bodies.
	MaxJSONBodySize = 1 << 20 // 1 MB

	// MaxFormBodySize caps application/x-www-form-urlencoded bodies.
	MaxFormBodySize = 1 << 20 // 1 MB

	// MultipartOverhead covers the text fields and part headers sent
	// alongside an uploaded file.
	MultipartOverhead = 1 << 20 // 1 MB
)
