// Package flagx helps components parse only their own command-line flags
// without tripping over flags that belong to other packages.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args belonging to the allowed flags.
// Both "-f value" and "-f=value" forms are recognized; for the separate
// form the following argument is kept as the value unless it looks like
// another flag.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, combined := strings.Cut(arg, "=")
		if _, ok := allowed[name]; !ok {
			continue
		}

		filtered = append(filtered, arg)
		if combined {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// ConfigFileFlag extracts the config file path given via -c or -config.
// Other arguments are ignored, so any component can call this safely
// before defining its own flags. Returns "" when neither flag is present.
func ConfigFileFlag() string {
	var path string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(args)

	return path
}
