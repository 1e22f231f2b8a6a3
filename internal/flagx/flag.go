// Package flagx lets several components read their own flags from the same
// command line without tripping over each other's definitions.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs keeps only the flags named in allowed together with their
// values. Both "-c conf.json" and "-config=conf.json" forms are understood.
// A following token that starts with "-" is never taken as a value.
func FilterArgs(args []string, allowed []string) []string {
	known := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		known[f] = struct{}{}
	}

	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, ok := known[name]; ok {
				kept = append(kept, arg)
			}
			continue
		}

		if _, ok := known[arg]; !ok {
			continue
		}
		kept = append(kept, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			kept = append(kept, args[i+1])
			i++
		}
	}
	return kept
}

// Sources names the optional files configuration is layered from.
type Sources struct {
	// ConfigFile is a JSON file selected with -c or -config.
	ConfigFile string
	// EnvFile is a dotenv file selected with -e or -env.
	EnvFile string
}

// SourceFlags extracts the configuration file locations from args
// (normally os.Args[1:]). Unknown flags are ignored; the last occurrence of
// a repeated flag wins.
func SourceFlags(args []string) Sources {
	var s Sources

	fs := flag.NewFlagSet("sources", flag.ContinueOnError)
	fs.StringVar(&s.ConfigFile, "config", "", "path to JSON config file")
	fs.StringVar(&s.ConfigFile, "c", "", "path to JSON config file (short)")
	fs.StringVar(&s.EnvFile, "env", "", "path to .env file")
	fs.StringVar(&s.EnvFile, "e", "", "path to .env file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "-e", "-env"}))

	return s
}
