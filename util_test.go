package fyyur

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusText(t *testing.T) {
	tests := []struct {
		code   int
		status string
		want   string
	}{
		{code: 404, status: "404 Not Found", want: "Not Found"},
		{code: 404, status: "404 Gone Fishing", want: "Gone Fishing"},
		{code: 204, status: "204", want: "No Content"},
		{code: 500, status: "", want: "Internal Server Error"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusText(tt.code, tt.status), tt.status)
	}
}

func TestIsSuccessStatus(t *testing.T) {
	assert.True(t, isSuccessStatus(200))
	assert.True(t, isSuccessStatus(204))
	assert.True(t, isSuccessStatus(299))
	assert.False(t, isSuccessStatus(199))
	assert.False(t, isSuccessStatus(302))
	assert.False(t, isSuccessStatus(404))
}

func TestHTMLTitle(t *testing.T) {
	assert.Equal(t, "500 Internal Server Error",
		htmlTitle([]byte("<html><head><title>\n  500 Internal Server Error\n</title></head></html>")))
	assert.Equal(t, "", htmlTitle([]byte("<html><body><h1>Oops</h1></body></html>")))
	assert.Equal(t, "", htmlTitle([]byte(`{"success": false}`)))
	assert.Equal(t, "", htmlTitle(nil))
}

func TestConfirmedSuccess(t *testing.T) {
	assert.True(t, confirmedSuccess([]byte(`{"success": true}`)))
	assert.False(t, confirmedSuccess([]byte(`{"success": false}`)))
	assert.False(t, confirmedSuccess([]byte(`{}`)))
	assert.False(t, confirmedSuccess([]byte(`<html></html>`)))
	assert.False(t, confirmedSuccess(nil))
}

func TestVenuePath(t *testing.T) {
	assert.Equal(t, "/venues/42", VenuePath("42", false))
	assert.Equal(t, "/venues/42", VenuePath(VenueIDFromInt(42), true))
	assert.Equal(t, "/venues/a b", VenuePath("a b", false))
	assert.Equal(t, "/venues/a%20b", VenuePath("a b", true))
	assert.Equal(t, "/venues/1?x=2", VenuePath("1?x=2", false))
	assert.Equal(t, "/venues/1%3Fx=2", VenuePath("1?x=2", true))
}

func TestVenueID(t *testing.T) {
	assert.True(t, VenueID("42").Valid())
	assert.False(t, VenueID("").Valid())
	assert.Equal(t, `{VenueID:"42"}`, VenueID("42").String())
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, isValidURL("http://localhost:5000"))
	assert.False(t, isValidURL("localhost:5000/venues"))
	assert.False(t, isValidURL("/venues"))
}
