package cmd

import (
	"fmt"
	"time"

	"github.com/phil-mansfield/qmcpoints/logging"
	"github.com/phil-mansfield/qmcpoints/math/rand"
	"github.com/phil-mansfield/qmcpoints/parse"
)

// XoshiroConfig contains the configuration fields for the 'xoshiro' mode of
// the qmcpoints tool.
type XoshiroConfig struct {
	seed, bound uint64
	randomSeed  bool
	pairs       int64
	scale       float64
}

var _ Mode = &XoshiroConfig{}

// ExampleConfig creates an example xoshiro.config file.
func (config *XoshiroConfig) ExampleConfig() string {
	return `[xoshiro.config]

#####################
## Optional Fields ##
#####################

# Seed is the unsigned 64-bit seed of the xoshiro256** generator. Hex values
# like 0x303a are allowed. Defaults to 12346.
Seed = 12346

# If RandomSeed is true, Seed is ignored and a seed is chosen from a
# cryptographic source instead. The seed is logged at the info level so that
# the run can be repeated. Defaults to false.
RandomSeed = false

# Pairs is the number of (x, y) points to generate. Defaults to 1000.
Pairs = 1000

# Each coordinate is a bounded draw in [0, Bound) divided by Scale. Bounded
# draws use a modulus, so they are very slightly biased unless Bound is a
# power of two. Defaults to Bound = 1000 and Scale = 1000.
Bound = 1000
Scale = 1000.0`
}

// ReadConfig reads a xoshiro.config file and any overriding flags.
func (config *XoshiroConfig) ReadConfig(fname string, flags []string) error {
	vars := parse.NewConfigVars("xoshiro.config")
	vars.Uint(&config.seed, "Seed", 12346)
	vars.Bool(&config.randomSeed, "RandomSeed", false)
	vars.Int(&config.pairs, "Pairs", 1000)
	vars.Uint(&config.bound, "Bound", 1000)
	vars.Float(&config.scale, "Scale", 1000.0)

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

func (config *XoshiroConfig) validate() error {
	switch {
	case config.pairs < 0:
		return fmt.Errorf("The variable 'Pairs' was set to %d, but it "+
			"can't be negative.", config.pairs)
	case config.scale <= 0:
		return fmt.Errorf("The variable 'Scale' was set to %g, but it "+
			"must be positive.", config.scale)
	}
	return nil
}

// Run generates the xoshiro256** pairs and writes them out.
func (config *XoshiroConfig) Run(gConfig *GlobalConfig) ([]string, error) {
	log := logging.NewLogger("xoshiro")
	if logging.Mode != logging.Nil {
		log.Info(`
#######################
## qmcpoints xoshiro ##
#######################`,
		)
	}
	var t time.Time
	if logging.Mode == logging.Performance {
		t = time.Now()
	}

	seed := config.seed
	if config.randomSeed {
		var err error
		if _, seed, err = rand.NewRandomSeed(); err != nil {
			return nil, fmt.Errorf("I couldn't choose a random seed: %s",
				err.Error())
		}
	}
	log.Infof("Using seed %d", seed)

	s, err := rand.NewPairStream(
		seed, int(config.pairs), config.bound, config.scale,
	)
	if err != nil {
		return nil, err
	}

	lines, err := gConfig.write("Xoshiro256**", s, log)
	if err != nil {
		return nil, err
	}

	if logging.Mode == logging.Performance {
		log.Infof("Time: %s", time.Since(t).String())
		logging.LogMem(log)
	}
	return lines, nil
}
