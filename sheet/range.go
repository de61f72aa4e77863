package sheet

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/sheetdrive/sheetdrive/gapi"
)

var rangeRegex = regexp.MustCompile(`^(.+?)!\$?([A-Za-z]+)\$?([0-9]+):\$?([A-Za-z]+)\$?([0-9]+)?$`)

// Range is a parsed A1 notation spreadsheet range e.g. 'Sheet1!A1:C10'. A zero Bottom row
// is an open ended range ('Sheet1!A2:E').
type Range struct {
	Worksheet string
	Left      string
	Top       int
	Right     string
	Bottom    int
}

// ParseRange parses an A1 notation range expression, returning a gapi.RangeError for a
// malformed expression - before any request is made to the hosted API.
func ParseRange(area string) (Range, error) {
	match := rangeRegex.FindStringSubmatch(area)
	if len(match) < 5 {
		return Range{}, &gapi.RangeError{Range: area, Err: fmt.Errorf("expected something like 'Sheet1!A1:C10'")}
	}

	top, err := strconv.Atoi(match[3])
	if err != nil {
		return Range{}, &gapi.RangeError{Range: area, Err: err}
	}

	bottom := 0
	if match[5] != "" {
		if bottom, err = strconv.Atoi(match[5]); err != nil {
			return Range{}, &gapi.RangeError{Range: area, Err: err}
		}
	}

	return Range{
		Worksheet: match[1],
		Left:      match[2],
		Top:       top,
		Right:     match[4],
		Bottom:    bottom,
	}, nil
}

func (r Range) String() string {
	if r.Bottom == 0 {
		return fmt.Sprintf("%s!%s%v:%s", r.Worksheet, r.Left, r.Top, r.Right)
	}

	return fmt.Sprintf("%s!%s%v:%s%v", r.Worksheet, r.Left, r.Top, r.Right, r.Bottom)
}
