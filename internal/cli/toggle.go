package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	toggleFlagTypeName        = "toggle"
	toggleTrueLiteral         = "true"
	toggleAcceptedValues      = "true, false, yes, no, on, off, 1, 0"
	invalidToggleValueMessage = "invalid value %q for --%s; accepted values: %s"
)

var toggleLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// toggleValue is a boolean flag that accepts yes/no style literals and may be given without a value.
type toggleValue struct {
	target   *bool
	flagName string
}

func (value *toggleValue) Set(input string) error {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		normalized = toggleTrueLiteral
	}
	parsed, known := toggleLiterals[normalized]
	if !known {
		return fmt.Errorf(invalidToggleValueMessage, input, value.flagName, toggleAcceptedValues)
	}
	*value.target = parsed
	return nil
}

func (value *toggleValue) String() string {
	if value == nil || value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *toggleValue) Type() string {
	return toggleFlagTypeName
}

// addToggle registers a toggle flag defaulting to false.
func addToggle(flagSet *pflag.FlagSet, target *bool, name string, usage string) {
	*target = false
	flagSet.Var(&toggleValue{target: target, flagName: name}, name, usage)
	if registered := flagSet.Lookup(name); registered != nil {
		registered.DefValue = strconv.FormatBool(false)
		registered.NoOptDefVal = toggleTrueLiteral
	}
}

// expandToggleArguments rewrites "--flag literal" pairs into "--flag=literal" for toggle flags so that pflag,
// which only binds optional values written with "=", does not treat the literal as a positional argument.
func expandToggleArguments(command *cobra.Command, arguments []string) []string {
	toggleNames := map[string]struct{}{}
	collectToggleNames(command, toggleNames)
	if len(toggleNames) == 0 {
		return arguments
	}
	expanded := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		argument := arguments[index]
		if argument == "--" {
			expanded = append(expanded, arguments[index:]...)
			break
		}
		if strings.HasPrefix(argument, "--") && !strings.Contains(argument, "=") && index+1 < len(arguments) {
			flagName := strings.TrimPrefix(argument, "--")
			if _, isToggle := toggleNames[flagName]; isToggle {
				literal := strings.ToLower(strings.TrimSpace(arguments[index+1]))
				if _, known := toggleLiterals[literal]; known {
					expanded = append(expanded, argument+"="+arguments[index+1])
					index++
					continue
				}
			}
		}
		expanded = append(expanded, argument)
	}
	return expanded
}

func collectToggleNames(command *cobra.Command, names map[string]struct{}) {
	if command == nil {
		return
	}
	command.LocalFlags().VisitAll(func(flag *pflag.Flag) {
		if flag.Value.Type() == toggleFlagTypeName {
			names[flag.Name] = struct{}{}
		}
	})
	for _, child := range command.Commands() {
		collectToggleNames(child, names)
	}
}
