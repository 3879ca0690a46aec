package cmd

import (
	"fmt"
	"time"

	"github.com/phil-mansfield/qmcpoints/logging"
	"github.com/phil-mansfield/qmcpoints/math/rand"
	"github.com/phil-mansfield/qmcpoints/parse"
)

// SobolConfig contains the configuration fields for the 'sobol' mode of the
// qmcpoints tool.
type SobolConfig struct {
	points, dim int64
}

var _ Mode = &SobolConfig{}

// ExampleConfig creates an example sobol.config file.
func (config *SobolConfig) ExampleConfig() string {
	return fmt.Sprintf(`[sobol.config]

#####################
## Optional Fields ##
#####################

# Points is the number of points to generate. It can be at most %d.
# Defaults to 100.
Points = 100

# Dim is the number of coordinates in each point. Direction numbers are
# only available for the first %d dimensions:
# 1 - van der Corput (bit-reversed) sequence
# 2 - the polynomial x^3 + x + 1 with m = 1, 1, 5
# Defaults to 2.
Dim = 2`, rand.MaxSobolPoints, rand.MaxDim)
}

// ReadConfig reads a sobol.config file and any overriding flags.
func (config *SobolConfig) ReadConfig(fname string, flags []string) error {
	vars := parse.NewConfigVars("sobol.config")
	vars.Int(&config.points, "Points", 100)
	vars.Int(&config.dim, "Dim", 2)

	if fname != "" {
		if err := parse.ReadConfig(fname, vars); err != nil {
			return err
		}
	}
	if err := parse.ReadFlags(flags, vars); err != nil {
		return err
	}

	return config.validate()
}

func (config *SobolConfig) validate() error {
	if config.points < 0 {
		return fmt.Errorf("The variable 'Points' was set to %d, but it "+
			"can't be negative.", config.points)
	}
	return nil
}

// Run generates the Sobol points and writes them out.
func (config *SobolConfig) Run(gConfig *GlobalConfig) ([]string, error) {
	log := logging.NewLogger("sobol")
	if logging.Mode != logging.Nil {
		log.Info(`
#####################
## qmcpoints sobol ##
#####################`,
		)
	}
	var t time.Time
	if logging.Mode == logging.Performance {
		t = time.Now()
	}

	s, err := rand.NewSobolStream(int(config.points), int(config.dim))
	if err != nil {
		return nil, err
	}
	log.Debugf("Generating %d points in %d dimensions", s.Len(), s.Dim())

	lines, err := gConfig.write("Sobol sequence", s, log)
	if err != nil {
		return nil, err
	}

	if logging.Mode == logging.Performance {
		log.Infof("Time: %s", time.Since(t).String())
		logging.LogMem(log)
	}
	return lines, nil
}
