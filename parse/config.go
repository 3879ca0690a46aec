/*package parse reads the config files and command line flags used by the
qmcpoints modes.

A config file starts with a header naming its type, followed by variable
assignments. Everything after a '#' is a comment, and list values are comma
separated:

	[sobol.config]
	# The number of points to generate.
	Points = 100
	Dim = 2

Any variable may also be set by a flag, e.g. "--Points 1000". List flags can
either be comma separated or spread across multiple tokens.
*/
package parse

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"
	"unicode"
)

/////////////////////
// Conversion Code //
/////////////////////

type varType int

const (
	intVar varType = iota
	intsVar
	uintVar
	floatVar
	floatsVar
	stringVar
	stringsVar
	boolVar
	boolsVar
)

func (v varType) String() string {
	switch v {
	case intVar:
		return "int"
	case intsVar:
		return "int list"
	case uintVar:
		return "unsigned int"
	case floatVar:
		return "float"
	case floatsVar:
		return "float list"
	case stringVar:
		return "string"
	case stringsVar:
		return "string list"
	case boolVar:
		return "bool"
	case boolsVar:
		return "bool list"
	}
	panic("Impossible")
}

type conversionFunc func(string) bool

// ConfigVars is the set of variables which can be assigned to by a config
// file of a particular type.
type ConfigVars struct {
	name            string
	varNames        []string
	varTypes        []varType
	conversionFuncs []conversionFunc
}

func intConv(ptr *int64) conversionFunc {
	return func(s string) bool {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return false
		}
		*ptr = i
		return true
	}
}

func uintConv(ptr *uint64) conversionFunc {
	return func(s string) bool {
		// Base 0 allows seeds to be written in hex.
		u, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return false
		}
		*ptr = u
		return true
	}
}

func floatConv(ptr *float64) conversionFunc {
	return func(s string) bool {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false
		}
		*ptr = f
		return true
	}
}

func stringConv(ptr *string) conversionFunc {
	return func(s string) bool {
		*ptr = strings.Trim(s, " ")
		return true
	}
}

func boolConv(ptr *bool) conversionFunc {
	return func(s string) bool {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false
		}
		*ptr = b
		return true
	}
}

func strToList(a string) []string {
	strs := strings.Split(a, ",")
	for i := range strs {
		strs[i] = strings.Trim(strs[i], " ")
	}
	return strs
}

// The list conversions overwrite the default value rather than appending to
// it.

func intsConv(ptr *[]int64) conversionFunc {
	return func(s string) bool {
		toks := strToList(s)
		out := make([]int64, 0, len(toks))
		for j := range toks {
			i, err := strconv.ParseInt(toks[j], 10, 64)
			if err != nil {
				return false
			}
			out = append(out, i)
		}
		*ptr = out
		return true
	}
}

func floatsConv(ptr *[]float64) conversionFunc {
	return func(s string) bool {
		toks := strToList(s)
		out := make([]float64, 0, len(toks))
		for j := range toks {
			f, err := strconv.ParseFloat(toks[j], 64)
			if err != nil {
				return false
			}
			out = append(out, f)
		}
		*ptr = out
		return true
	}
}

func stringsConv(ptr *[]string) conversionFunc {
	return func(s string) bool {
		*ptr = strToList(s)
		return true
	}
}

func boolsConv(ptr *[]bool) conversionFunc {
	return func(s string) bool {
		toks := strToList(s)
		out := make([]bool, 0, len(toks))
		for j := range toks {
			b, err := strconv.ParseBool(toks[j])
			if err != nil {
				return false
			}
			out = append(out, b)
		}
		*ptr = out
		return true
	}
}

// NewConfigVars returns an empty set of variables for config files with the
// header [name].
func NewConfigVars(name string) *ConfigVars {
	return &ConfigVars{name: name}
}

// Name returns the header name of the config file type.
func (vars *ConfigVars) Name() string { return vars.name }

func (vars *ConfigVars) add(name string, t varType, f conversionFunc) {
	vars.varNames = append(vars.varNames, strings.ToLower(name))
	vars.conversionFuncs = append(vars.conversionFuncs, f)
	vars.varTypes = append(vars.varTypes, t)
}

func (vars *ConfigVars) Int(ptr *int64, name string, value int64) {
	*ptr = value
	vars.add(name, intVar, intConv(ptr))
}

func (vars *ConfigVars) Uint(ptr *uint64, name string, value uint64) {
	*ptr = value
	vars.add(name, uintVar, uintConv(ptr))
}

func (vars *ConfigVars) Float(ptr *float64, name string, value float64) {
	*ptr = value
	vars.add(name, floatVar, floatConv(ptr))
}

func (vars *ConfigVars) String(ptr *string, name string, value string) {
	*ptr = value
	vars.add(name, stringVar, stringConv(ptr))
}

func (vars *ConfigVars) Bool(ptr *bool, name string, value bool) {
	*ptr = value
	vars.add(name, boolVar, boolConv(ptr))
}

func (vars *ConfigVars) Ints(ptr *[]int64, name string, value []int64) {
	*ptr = value
	vars.add(name, intsVar, intsConv(ptr))
}

func (vars *ConfigVars) Floats(ptr *[]float64, name string, value []float64) {
	*ptr = value
	vars.add(name, floatsVar, floatsConv(ptr))
}

func (vars *ConfigVars) Strings(ptr *[]string, name string, value []string) {
	*ptr = value
	vars.add(name, stringsVar, stringsConv(ptr))
}

func (vars *ConfigVars) Bools(ptr *[]bool, name string, value []bool) {
	*ptr = value
	vars.add(name, boolsVar, boolsConv(ptr))
}

//////////////////
// Parsing Code //
//////////////////

// ReadConfig reads the config file fname and assigns its values to vars.
func ReadConfig(fname string, vars *ConfigVars) error {
	bs, err := ioutil.ReadFile(fname)
	if err != nil {
		return err
	}
	lines := strings.Split(string(bs), "\n")
	lines, lineNums := removeComments(lines)
	for i := range lineNums {
		lineNums[i]++
	}

	if len(lines) == 0 || lines[0] != fmt.Sprintf("[%s]", vars.name) {
		return fmt.Errorf(
			"I expected the config file %s to have the header "+
				"[%s] at the top, but didn't find it.", fname, vars.name,
		)
	}
	lines, lineNums = lines[1:], lineNums[1:]

	names, vals, errLine := associationList(lines)
	if errLine != -1 {
		return fmt.Errorf(
			"I could not parse line %d of the config file %s because it "+
				"did not take the form of a variable assignment.",
			lineNums[errLine], fname,
		)
	}

	loc := func(i int) string {
		return fmt.Sprintf("Line %d of the config file %s", lineNums[i], fname)
	}
	return assign(names, vals, vars, loc)
}

// ReadFlags assigns values to vars from command line flags of the form
// "--Name value [value ...]". Multiple values are joined into a list.
func ReadFlags(flags []string, vars *ConfigVars) error {
	names, vals, errTok := flagList(flags)
	if errTok != -1 {
		return fmt.Errorf("I expected the command line argument '%s' to "+
			"be a flag name (e.g. --Name), but it isn't.", flags[errTok])
	}

	loc := func(i int) string {
		return fmt.Sprintf("The flag --%s", names[i])
	}
	return assign(names, vals, vars, loc)
}

// assign checks and converts an association list. loc describes where the
// ith assignment came from.
func assign(
	names, vals []string, vars *ConfigVars, loc func(int) string,
) error {
	if errLine := checkValidNames(names, vars); errLine != -1 {
		return fmt.Errorf(
			"%s assigns a value to the variable '%s', but config files of "+
				"type %s don't have that variable.",
			loc(errLine), names[errLine], vars.name,
		)
	}

	if errLine1, errLine2 := checkDuplicateNames(names); errLine1 != -1 {
		return fmt.Errorf(
			"%s and %s both assign a value to the variable '%s'.",
			loc(errLine1), strings.ToLower(loc(errLine2)[:1])+
				loc(errLine2)[1:], names[errLine1],
		)
	}

	if errLine := convertAssoc(names, vals, vars); errLine != -1 {
		j := varIndex(names[errLine], vars)
		typeName := vars.varTypes[j].String()
		a := "a"
		if typeName[0] == 'i' || typeName[0] == 'u' {
			a = "an"
		}
		return fmt.Errorf(
			"%s couldn't be parsed because '%s' expects values of type %s "+
				"and '%s' cannot be converted to %s %s.", loc(errLine),
			vars.varNames[j], typeName, vals[errLine], a, typeName,
		)
	}

	return nil
}

func removeComments(lines []string) ([]string, []int) {
	tmp := make([]string, len(lines))
	copy(tmp, lines)
	lines = tmp

	for i := range lines {
		comment := strings.Index(lines[i], "#")
		if comment == -1 {
			continue
		}
		lines[i] = lines[i][:comment]
	}

	out, lineNums := []string{}, []int{}
	for i := range lines {
		line := strings.Trim(lines[i], " \t\r")
		if len(line) == 0 {
			continue
		}
		out = append(out, line)
		lineNums = append(lineNums, i)
	}

	return out, lineNums
}

func associationList(lines []string) ([]string, []string, int) {
	names, vals := []string{}, []string{}
	for i := range lines {
		eq := strings.Index(lines[i], "=")
		if eq == -1 {
			return nil, nil, i
		}
		name := lines[i][:eq]
		val := ""
		if len(lines[i])-1 > eq {
			val = lines[i][eq+1:]
		}
		names = append(names, strings.ToLower(strings.Trim(name, " ")))
		if len(names[len(names)-1]) == 0 {
			return nil, nil, i
		}
		vals = append(vals, strings.Trim(val, " "))
	}
	return names, vals, -1
}

// isFlagName returns true if tok is a flag name rather than a value. Values
// like "-1" and "-.5" are not names.
func isFlagName(tok string) bool {
	name := strings.TrimLeft(tok, "-")
	return len(name) < len(tok) && len(name) > 0 &&
		unicode.IsLetter(rune(name[0]))
}

// flagList converts flag tokens to an association list. If the tokens are
// malformed, the index of the first bad token is returned.
func flagList(flags []string) ([]string, []string, int) {
	names, vals := []string{}, []string{}
	for i := 0; i < len(flags); {
		if !isFlagName(flags[i]) {
			return nil, nil, i
		}
		names = append(names, strings.ToLower(strings.TrimLeft(flags[i], "-")))

		j := i + 1
		for j < len(flags) && !isFlagName(flags[j]) {
			j++
		}
		vals = append(vals, strings.Join(flags[i+1:j], ","))
		i = j
	}
	return names, vals, -1
}

func checkValidNames(names []string, vars *ConfigVars) int {
	for i := range names {
		if varIndex(names[i], vars) == -1 {
			return i
		}
	}
	return -1
}

func checkDuplicateNames(names []string) (int, int) {
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			if names[i] == names[j] {
				return i, j
			}
		}
	}
	return -1, -1
}

func varIndex(name string, vars *ConfigVars) int {
	for j := range vars.varNames {
		if vars.varNames[j] == name {
			return j
		}
	}
	return -1
}

func convertAssoc(names, vals []string, vars *ConfigVars) int {
	for i := range names {
		j := varIndex(names[i], vars)
		if ok := vars.conversionFuncs[j](vals[i]); !ok {
			return i
		}
	}
	return -1
}
