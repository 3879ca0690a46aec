/*package cmd contains code for running qmcpoints in its various command
line modes */
package cmd

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	plog "github.com/pion/logging"

	"github.com/phil-mansfield/qmcpoints/io"
	"github.com/phil-mansfield/qmcpoints/logging"
	"github.com/phil-mansfield/qmcpoints/math/rand"
	"github.com/phil-mansfield/qmcpoints/parse"
	"github.com/phil-mansfield/qmcpoints/version"
)

var ModeNames map[string]Mode = map[string]Mode{
	"sobol":   &SobolConfig{},
	"xoshiro": &XoshiroConfig{},
}

// Mode represents the interface used by the main binary when interacting with
// a given command line mode.
type Mode interface {
	// ReadConfig reads a mode-specific config file and then a list of
	// tokenized command line flags, and stores the result within the Mode.
	// If fname is "", only the defaults and flags are used.
	ReadConfig(fname string, flags []string) error
	// ExampleConfig returns the text of an example config file of this mode.
	ExampleConfig() string
	// Run executes the mode. It takes an initialized GlobalConfig struct and
	// will return a slice of lines that should be written to stdout along
	// with an error if one occurs.
	Run(gConfig *GlobalConfig) ([]string, error)
}

// GlobalConfig is a config file used by every mode. It controls where and how
// points are written.
type GlobalConfig struct {
	Version    string
	OutputFile string
	Header     bool
	Delimiter  string
	LogLevel   string
	LogMode    string
}

var _ Mode = &GlobalConfig{}

// ReadConfig reads a config file and returns an error, if applicable. The
// flags are ignored.
func (config *GlobalConfig) ReadConfig(fname string, flags []string) error {
	vars := parse.NewConfigVars("config")
	vars.String(&config.Version, "Version", version.SourceVersion)
	vars.String(&config.OutputFile, "OutputFile", "")
	vars.Bool(&config.Header, "Header", true)
	vars.String(&config.Delimiter, "Delimiter", ",")
	vars.String(&config.LogLevel, "LogLevel", "warn")
	vars.String(&config.LogMode, "LogMode", "nil")

	if fname != "" {
		if err := parse.ReadConfig(fname, vars); err != nil {
			return err
		}
	}

	return config.validate()
}

// validate checks that all the user-generated fields of GlobalConfig are
// properly set.
func (config *GlobalConfig) validate() error {
	if err := version.Check(config.Version); err != nil {
		return err
	}

	if _, err := config.delim(); err != nil {
		return err
	}

	if _, err := logging.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("The 'LogLevel' variable is set to '%s', which "+
			"I don't recognize.", config.LogLevel)
	}
	if _, err := config.logMode(); err != nil {
		return err
	}

	return nil
}

// delim returns the column delimiter. "tab" and "space" may be used in place
// of the literal characters.
func (config *GlobalConfig) delim() (rune, error) {
	s := config.Delimiter
	switch strings.ToLower(s) {
	case "tab", "\\t":
		return '\t', nil
	case "space":
		return ' ', nil
	}

	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("The 'Delimiter' variable is set to '%s', but "+
			"it must be a single character.", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if err := io.ValidateDelimiter(r); err != nil {
		return 0, fmt.Errorf("The 'Delimiter' variable is set to '%s', but "+
			"%s", s, err.Error())
	}
	return r, nil
}

func (config *GlobalConfig) logMode() (logging.Flag, error) {
	switch strings.ToLower(config.LogMode) {
	case "nil", "":
		return logging.Nil, nil
	case "performance":
		return logging.Performance, nil
	case "debug":
		return logging.Debug, nil
	}
	return logging.Nil, fmt.Errorf("The 'LogMode' variable is set to '%s', "+
		"which I don't recognize.", config.LogMode)
}

// InitLogging sets the global logging state from the config.
func (config *GlobalConfig) InitLogging() error {
	mode, err := config.logMode()
	if err != nil {
		return err
	}
	logging.Mode = mode
	return logging.SetLevel(config.LogLevel)
}

// write writes every point in s to the configured output. If no output file
// is set, the formatted rows are returned so they can be printed to stdout.
// Otherwise, a single line naming the file and describing the points as what
// is returned.
func (config *GlobalConfig) write(
	what string, s rand.PointStream, log plog.LeveledLogger,
) ([]string, error) {
	delim, err := config.delim()
	if err != nil {
		return nil, err
	}

	if config.OutputFile == "" {
		buf := &bytes.Buffer{}
		if _, err = io.Write(buf, s, config.Header, delim); err != nil {
			return nil, err
		}
		lines := strings.Split(buf.String(), "\n")
		if lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		return lines, nil
	}

	n, err := io.WriteFile(config.OutputFile, s, config.Header, delim)
	if err != nil {
		return nil, err
	}
	log.Infof("Wrote %d points to %s", n, config.OutputFile)

	return []string{
		fmt.Sprintf("%s points written to: %s", what, config.OutputFile),
	}, nil
}

// ExampleConfig returns an example configuration file.
func (config *GlobalConfig) ExampleConfig() string {
	return fmt.Sprintf(`[config]
# Target version of qmcpoints. This option merely allows qmcpoints to notice
# when its source and configuration files are not from the same version.
#
# This variable defaults to the source version if not included.
Version = %s

# OutputFile is the file that points are written to. If it isn't set, points
# are printed to stdout instead.
# OutputFile = sobol_output.csv

# Header determines whether a row of column names (x,y) is written before the
# points. Defaults to true.
Header = true

# Delimiter is the character which separates columns. "tab" and "space" can be
# used for whitespace. Defaults to ",".
Delimiter = ,

# LogLevel is the verbosity of messages written to stderr. Supported levels:
# disabled, error, warn, info, debug, trace. Defaults to warn.
LogLevel = warn

# LogMode can be set to performance to report memory usage, or to debug.
# Both raise LogLevel to at least info. Defaults to nil.
LogMode = nil`, version.SourceVersion)
}

// Run is a dummy method which allows GlobalConfig to conform to the Mode
// interface for testing purposes.
func (config *GlobalConfig) Run(gConfig *GlobalConfig) ([]string, error) {
	panic("GlobalConfig.Run() should never be executed.")
}
