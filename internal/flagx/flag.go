// Package flagx helps several independent parsers share one command line.
// Each config layer picks out only the flags it owns, so the client and the
// server can add flags without tripping over each other.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the subset of args made of allowed flags and their
// values. Both "-f value" and "-f=value" forms are recognised; a token that
// starts with "-" is never consumed as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFileFlag extracts the JSON config path given with -c or -config.
// Everything else in args is ignored. Empty when neither flag is present.
func ConfigFileFlag(args []string) string {
	var path string
	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))
	return path
}
