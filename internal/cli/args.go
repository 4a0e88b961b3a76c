// internal/cli/args.go
package cli

import (
	"flag"
	"strings"
)

// boolFlags returns the names of flags that take no value.
func boolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// splitArgs separates flags from positionals so a mesh path may appear
// anywhere on the command line. "--" ends flag parsing and a lone "-" is a
// positional (stdin). Call after all flags are registered.
func splitArgs(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	bools := boolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(posArgs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		case strings.Contains(arg, "="):
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if name := strings.TrimLeft(arg, "-"); !bools[name] && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
		}
	}
	return flagArgs, posArgs
}
