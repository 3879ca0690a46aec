/*package qmcpoints generates Sobol and xoshiro256** point sets in the unit
square for Monte Carlo discrepancy comparisons.*/
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/phil-mansfield/qmcpoints/cmd"
	"github.com/phil-mansfield/qmcpoints/logging"
	"github.com/phil-mansfield/qmcpoints/version"
)

var helpStrings = map[string]string{
	"sobol": `The sobol mode writes the first Points points of a Dim-dimensional
Sobol sequence. Any variable in sobol.config can be overridden with a flag,
e.g. qmcpoints sobol --Points 1000 --Dim 2`,
	"xoshiro": `The xoshiro mode writes Pairs (x, y) points made from bounded
xoshiro256** draws. Any variable in xoshiro.config can be overridden with a
flag, e.g. qmcpoints xoshiro --Seed 12346 --Pairs 1000`,

	"config":         new(cmd.GlobalConfig).ExampleConfig(),
	"sobol.config":   cmd.ModeNames["sobol"].ExampleConfig(),
	"xoshiro.config": cmd.ModeNames["xoshiro"].ExampleConfig(),
}

var modeDescriptions = `My help modes are:
qmcpoints help
qmcpoints help [ sobol | xoshiro ]
qmcpoints help [ config | sobol.config | xoshiro.config ]

My generation modes are:
qmcpoints sobol   [flags] [____.config] [____.sobol.config]
qmcpoints xoshiro [flags] [____.config] [____.xoshiro.config]

The global config file can also be set with $QMCPOINTS_GLOBAL_CONFIG.`

func main() {
	args := os.Args
	if len(args) <= 1 {
		fmt.Fprintf(
			os.Stderr, "I was not supplied with a mode.\nFor help, type "+
				"'./qmcpoints help'.\n",
		)
		os.Exit(1)
	}

	if args[1] == "help" {
		switch len(args) - 2 {
		case 0:
			fmt.Println(modeDescriptions)
		case 1:
			text, ok := helpStrings[args[2]]
			if !ok {
				fmt.Printf("I don't recognize the help target '%s'\n", args[2])
			} else {
				fmt.Println(text)
			}
		default:
			fmt.Println("The help mode can only take a single argument.")
		}
		os.Exit(0)
	} else if args[1] == "version" {
		fmt.Printf("qmcpoints version %s\n", version.SourceVersion)
		os.Exit(0)
	}

	mode, ok := cmd.ModeNames[args[1]]
	if !ok {
		fmt.Fprintf(
			os.Stderr, "You passed me the mode '%s', which I don't "+
				"recognize.\nFor help, type './qmcpoints help'\n", args[1],
		)
		os.Exit(1)
	}

	flags := getFlags(args)
	gConfig, err := getGlobalConfig(args)
	if err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}
	if err = gConfig.InitLogging(); err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}

	config, _ := getConfig(args)
	if err = mode.ReadConfig(config, flags); err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}

	logger := logging.NewLogger("qmcpoints")
	logger.Debugf("Running mode %s with flags %v", args[1], flags)

	out, err := mode.Run(gConfig)
	if err != nil {
		logger.Errorf("Mode %s failed", args[1])
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}

	for i := range out {
		fmt.Println(out[i])
	}
}

// getFlags returns the flag tokens from the command line arguments.
func getFlags(args []string) []string {
	return args[2 : len(args)-configNum(args)]
}

// getGlobalConfig reads the global config file named either by
// $QMCPOINTS_GLOBAL_CONFIG or by the command line arguments. If neither
// names one, the defaults are used.
func getGlobalConfig(args []string) (*cmd.GlobalConfig, error) {
	name := os.Getenv("QMCPOINTS_GLOBAL_CONFIG")
	if name != "" {
		if configNum(args) > 1 {
			return nil, fmt.Errorf("$QMCPOINTS_GLOBAL_CONFIG has been " +
				"set, so you may only pass a single config file as a " +
				"parameter.")
		}
	} else {
		switch configNum(args) {
		case 0:
		case 1:
			if !isModeConfig(args[len(args)-1], args[1]) {
				name = args[len(args)-1]
			}
		case 2:
			name = args[len(args)-2]
		default:
			return nil, fmt.Errorf("Passed too many config files as " +
				"arguments.")
		}
	}

	config := &cmd.GlobalConfig{}
	if err := config.ReadConfig(name, nil); err != nil {
		return nil, err
	}
	return config, nil
}

// getConfig return the name of the mode-specific config file from the command
// line arguments.
func getConfig(args []string) (string, bool) {
	n := configNum(args)
	last := ""
	if n > 0 {
		last = args[len(args)-1]
	}

	switch {
	case os.Getenv("QMCPOINTS_GLOBAL_CONFIG") != "" && n == 1:
		return last, true
	case n == 2:
		return last, true
	case n == 1 && isModeConfig(last, args[1]):
		return last, true
	}
	return "", false
}

// configNum returns the number of configuration files at the end of the
// argument list.
func configNum(args []string) int {
	num := 0
	for i := len(args) - 1; i >= 2; i-- {
		if isConfig(args[i]) {
			num++
		} else {
			break
		}
	}
	return num
}

// isConfig returns true if the given string is a config file name.
func isConfig(s string) bool {
	return len(s) >= 7 && s[len(s)-7:] == ".config"
}

// isModeConfig returns true if s is the name of a config file for the given
// mode, e.g. run.sobol.config.
func isModeConfig(s, mode string) bool {
	suffix := "." + mode + ".config"
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
