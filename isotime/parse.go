package isotime

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

//////////////////////////////////////////////////

// Number of tokens a timestamp must split into: year, month, day, hour,
// minute, second and millisecond.
const MinFields = 7

var (
	TooFewFields = errors.New("too few timestamp fields")
	InvalidField = errors.New("invalid timestamp field")
)

const millisecondIndex = MinFields - 1

var nonDigits = regexp.MustCompile(`\D+`)

var fieldNames = [MinFields]string{
	"year", "month", "day", "hour", "minute", "second", "millisecond",
}

//////////////////////////////////////////////////

type Fields struct {
	Year        int
	Month       int // 1-based, as written.
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// MonthIndex returns the 0-based month (January = 0).
func (f Fields) MonthIndex() int {
	return f.Month - 1
}

// Time returns the UTC instant described by f. Out-of-range components
// overflow into the next larger unit.
func (f Fields) Time() time.Time {
	return time.Date(
		f.Year, time.Month(f.Month), f.Day,
		f.Hour, f.Minute, f.Second,
		f.Millisecond*int(time.Millisecond),
		time.UTC,
	)
}

//////////////////////////////////////////////////

// Split breaks s on every run of non-digit characters. A leading separator
// produces a leading empty token and a trailing one a trailing empty token.
func Split(s string) []string {
	return nonDigits.Split(s, -1)
}

func ParseFields(s string) (f Fields, err error) {
	tokens := Split(s)
	if len(tokens) < MinFields {
		err = fmt.Errorf("%w: got %d, need %d", TooFewFields, len(tokens), MinFields)
		return
	}

	dst := [MinFields]*int{
		&f.Year, &f.Month, &f.Day, &f.Hour, &f.Minute, &f.Second, &f.Millisecond,
	}
	for i, p := range dst {
		// A trailing separator ("...08:30:00Z") leaves the millisecond empty.
		if i == millisecondIndex && tokens[i] == "" {
			*p = 0
			continue
		}

		v, perr := strconv.ParseInt(tokens[i], 10, 32)
		if perr != nil {
			return Fields{}, fmt.Errorf("%w: %s %q", InvalidField, fieldNames[i], tokens[i])
		}

		*p = int(v)
	}

	return f, nil
}

// Parse converts a loosely delimited ISO-8601-like string such as
// "2021-03-15T08:30:00.000" into a UTC time. Any non-digit characters act as
// separators; tokens past the seventh are ignored.
func Parse(s string) (time.Time, error) {
	f, err := ParseFields(s)
	if err != nil {
		return time.Time{}, err
	}

	return f.Time(), nil
}
