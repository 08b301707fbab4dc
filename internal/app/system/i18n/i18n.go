// internal/app/system/i18n/i18n.go
//
// Package i18n resolves the language of a public read and projects localized
// field pairs (`<name>_es` / `<name>_en`) down to one value.
//
// Each resource declares a static table of Field accessors instead of
// building field names at runtime:
//
//	var eventText = struct{ Title, Description i18n.Field[models.Event] }{
//	    Title: i18n.Field[models.Event]{
//	        ES: func(e models.Event) string { return e.TitleES },
//	        EN: func(e models.Event) string { return e.TitleEN },
//	    },
//	    ...
//	}
//
//	title := eventText.Title.In(rec, lang)
package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

// Lang is a supported content language.
type Lang int

const (
	ES Lang = iota // default
	EN
)

// Tag returns the BCP 47 tag for l.
func (l Lang) Tag() language.Tag {
	if l == EN {
		return language.English
	}
	return language.Spanish
}

func (l Lang) String() string {
	if l == EN {
		return "en"
	}
	return "es"
}

// Parse maps a language code to a Lang. Only "en" selects English; every
// other value, including "", falls back to Spanish.
func Parse(code string) Lang {
	if code == "en" {
		return EN
	}
	return ES
}

// FromRequest reads the `lang` query parameter.
func FromRequest(r *http.Request) Lang {
	return Parse(r.URL.Query().Get("lang"))
}

// SetContentLanguage announces the language a localized response is in.
func SetContentLanguage(w http.ResponseWriter, l Lang) {
	w.Header().Set("Content-Language", l.Tag().String())
}

// Field is the pair of accessors for one localized field of T.
type Field[T any] struct {
	ES func(T) string
	EN func(T) string
}

// In returns the value of the field for lang.
func (f Field[T]) In(rec T, lang Lang) string {
	if lang == EN {
		return f.EN(rec)
	}
	return f.ES(rec)
}
