// internal/domain/models/chambermember.go
package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ChamberMember is a board or staff member shown on the public site.
type ChamberMember struct {
	ID      int64   `bson:"_id"`
	Name    string  `bson:"name"`
	RoleES  string  `bson:"role_es"`
	RoleEN  string  `bson:"role_en"`
	ImgPath *string `bson:"img_path,omitempty"`

	Timestamps `bson:",inline"`
}

func (m ChamberMember) HasImage() bool { return hasPath(m.ImgPath) }

// Initials returns the uppercased first letter of the first one or two
// words of the name.
func (m ChamberMember) Initials() string {
	words := strings.Fields(m.Name)
	if len(words) > 2 {
		words = words[:2]
	}
	var b strings.Builder
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
