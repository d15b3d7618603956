package fyyur

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

//////////////////////////////////////////////////

// VenueID is the opaque token identifying a venue on the server.
type VenueID string

func VenueIDFromInt(id int64) VenueID {
	return VenueID(strconv.FormatInt(id, 10))
}

func (id VenueID) Valid() bool {
	return id != ""
}

func (id VenueID) String() string {
	var s strings.Builder
	s.WriteString("{VenueID:")
	s.WriteString(strconv.Quote(string(id)))
	s.WriteRune('}')

	return s.String()
}

var InvalidVenueID = errors.New("invalid venue ID")

//////////////////////////////////////////////////

const venuesPathPrefix = "/venues/"

// VenuePath returns the resource path of id. Unless escape is set, the ID is
// appended verbatim, so IDs containing '/', '?' or '#' address a different
// resource than intended.
func VenuePath(id VenueID, escape bool) string {
	seg := string(id)
	if escape {
		seg = url.PathEscape(seg)
	}

	return venuesPathPrefix + seg
}
