package api

import (
	"net/http"

	"golang.org/x/text/language"
)

// Names are served in English unless Hebrew is asked for.
var languages = language.NewMatcher([]language.Tag{
	language.English,
	language.Hebrew,
})

// wantsHebrew negotiates the response language. The lang query parameter
// wins over Accept-Language.
func wantsHebrew(r *http.Request) bool {
	_, index := language.MatchStrings(languages, r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
	return index == 1
}
