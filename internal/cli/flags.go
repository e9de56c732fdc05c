package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// multiValueAnnotation marks flags that take every following non-flag
// argument as a value, so "-i a b" reads as "-i a -i b".
const multiValueAnnotation = "logfinder_multi_value"

// markMultiValue flags name as accepting several values after one flag
func markMultiValue(fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		// Only fails for unknown names, which would be a programming error
		_ = fs.SetAnnotation(name, multiValueAnnotation, []string{"true"})
	}
}

// expandMultiValueFlags rewrites args so that every value following a
// multi-value flag gets its own copy of the flag. Arguments after "--" are
// left alone.
func expandMultiValueFlags(args []string, fs *pflag.FlagSet) []string {
	out := make([]string, 0, len(args))
	current := ""      // flag to repeat, empty outside a multi-value run
	needValue := false // the flag token was just emitted without a value

	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		if isFlagToken(arg) {
			current, needValue = "", false
			if f, hasValue := lookupMultiValue(fs, arg); f != nil {
				current = "--" + f.Name
				needValue = !hasValue
			}
			out = append(out, arg)
			continue
		}

		if current != "" && !needValue {
			out = append(out, current)
		}
		needValue = false
		out = append(out, arg)
	}

	return out
}

func isFlagToken(arg string) bool {
	return len(arg) > 1 && strings.HasPrefix(arg, "-")
}

// lookupMultiValue returns the multi-value flag named by arg, and whether arg
// already carries its value (--inc=x, -ix or -i=x)
func lookupMultiValue(fs *pflag.FlagSet, arg string) (*pflag.Flag, bool) {
	var f *pflag.Flag
	hasValue := false

	if strings.HasPrefix(arg, "--") {
		var name string
		name, _, hasValue = strings.Cut(arg[2:], "=")
		f = fs.Lookup(name)
	} else {
		// -ierror is -i with the value error attached
		short := arg[1:]
		f = fs.ShorthandLookup(short[:1])
		hasValue = len(short) > 1
	}

	if f == nil || f.Annotations[multiValueAnnotation] == nil {
		return nil, false
	}
	return f, hasValue
}
