/*package version controls the version*/
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SourceVersion is the version string representing the semantic version number
// of the source code.
const SourceVersion = "0.1.0"

var errFormat = errors.New("Version string does not take the form of " +
	"three period-separated non-negative numbers")

// Parse parses a semantic version number string and returns an error if
// the string is invalid.
func Parse(s string) (major, minor, patch int, err error) {
	toks := strings.Split(s, ".")
	if len(toks) != 3 {
		return -1, -1, -1, errFormat
	}

	nums := [3]int{}
	for i := range toks {
		nums[i], err = strconv.Atoi(toks[i])
		if err != nil || nums[i] < 0 {
			return -1, -1, -1, errFormat
		}
	}

	return nums[0], nums[1], nums[2], nil
}

// Later returns true if s1 represents a later version of the source than
// s2. An error is returned if either is invalid.
func Later(s1, s2 string) (bool, error) {
	major1, minor1, patch1, err := Parse(s1)
	if err != nil {
		return false, err
	}
	major2, minor2, patch2, err := Parse(s2)
	if err != nil {
		return false, err
	}

	switch {
	case major1 != major2:
		return major1 > major2, nil
	case minor1 != minor2:
		return minor1 > minor2, nil
	default:
		return patch1 > patch2, nil
	}
}

// Check returns an error if s isn't the same version as the source.
func Check(s string) error {
	later, err := Later(s, SourceVersion)
	if err != nil {
		return fmt.Errorf("I couldn't parse the 'Version' variable: %s",
			err.Error())
	}
	earlier, _ := Later(SourceVersion, s)
	if later || earlier {
		return fmt.Errorf("The 'Version' variable is set to %s, but the "+
			"version of the source is %s.", s, SourceVersion)
	}
	return nil
}
