package fyyur

import (
	"bytes"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//////////////////////////////////////////////////

func isValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	if u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}

func isSuccessStatus(code int) bool {
	return code >= 200 && code <= 299
}

// Returns the reason phrase of an HTTP status line ("404 Not Found" yields
// "Not Found"), falling back to the standard text for the code.
func statusText(code int, status string) string {
	text := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if text == "" {
		text = http.StatusText(code)
	}

	return text
}

// Returns the trimmed text of the first <title> element in b, or "" if b is
// not HTML or has no title.
func htmlTitle(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	z := html.NewTokenizer(bytes.NewReader(b))
	inTitle := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""

		case html.StartTagToken:
			name, _ := z.TagName()
			inTitle = atom.Lookup(name) == atom.Title

		case html.EndTagToken:
			inTitle = false

		case html.TextToken:
			if inTitle {
				return strings.TrimSpace(string(z.Text()))
			}
		}
	}
}

// Reports whether b is a JSON document with a true "success" member, as the
// venue endpoint answers after deleting.
func confirmedSuccess(b []byte) bool {
	if len(b) == 0 || !gjson.ValidBytes(b) {
		return false
	}

	return gjson.GetBytes(b, "success").Bool()
}
