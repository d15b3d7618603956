package isotime

import (
	"errors"
	"time"
)

//////////////////////////////////////////////////

// Layout produced by Format. Parse accepts it back for years 0 through 9999.
const Layout = "2006-01-02T15:04:05.000"

func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

//////////////////////////////////////////////////

type Style uint

const (
	StyleMedium Style = (iota + 1)
	StyleFull
)

func (s Style) String() string {
	switch s {
	case StyleMedium:
		return "medium"
	case StyleFull:
		return "full"
	}

	return ""
}

var UnknownStyle = errors.New("unknown datetime style")

var styleLayouts = map[Style]string{
	StyleMedium: "Mon 01, 02, 2006 3:04PM",
	StyleFull:   "Monday January, 2, 2006 at 3:04PM",
}

// ParseStyle maps a style name ("medium", "full") to a Style.
func ParseStyle(name string) (Style, error) {
	for style := range styleLayouts {
		if style.String() == name {
			return style, nil
		}
	}

	return 0, UnknownStyle
}

// FormatStyle renders t (in its own location) using one of the named display
// styles of the venue listing pages.
func FormatStyle(t time.Time, style Style) (string, error) {
	layout, ok := styleLayouts[style]
	if !ok {
		return "", UnknownStyle
	}

	return t.Format(layout), nil
}
