// Package flags provides the flags shared by netprofile commands.
//
// Command-specific flags should be defined locally in the command file.
package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultEnvFile is the dotenv file read when --env-file is not given.
const DefaultEnvFile = ".env"

// MustString returns the string value, ignoring the error.
// Safe to use with registered flags where GetString cannot fail.
func MustString(s string, _ error) string { return s }

// MustBool returns the bool value, ignoring the error.
// Safe to use with registered flags where GetBool cannot fail.
func MustBool(b bool, _ error) bool { return b }

// MustStringArray returns the string array value, ignoring the error.
// Safe to use with registered flags where GetStringArray cannot fail.
func MustStringArray(s []string, _ error) []string { return s }

// EnvFile adds the repeatable --env-file flag naming the dotenv files that seed the environment.
// Retrieve the value with cmd.Flags().GetStringArray("env-file").
func EnvFile(cmd *cobra.Command) {
	cmd.Flags().StringArray("env-file", []string{DefaultEnvFile},
		"Dotenv file to seed the environment with, may be repeated. Missing files are skipped")
}

// Config adds the --config/-c flag naming an optional YAML file with environment config values.
// Retrieve the value with cmd.Flags().GetString("config").
func Config(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Optional YAML config file, overridden by environment variables")
}

// Format adds the --format/-f flag selecting the output encoding (default: yaml).
// Retrieve the value with cmd.Flags().GetString("format").
func Format(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "yaml", "Output format (yaml|json)")
}

// Print adds the --print flag for printing output to stdout (default: true).
// Retrieve the value with cmd.Flags().GetBool("print").
func Print(cmd *cobra.Command) {
	cmd.Flags().Bool("print", true, "Print output to stdout")
}

// Output adds the --out/-o flag for specifying output file path.
// Also supports the --output alias.
// Retrieve the value with cmd.Flags().GetString("out").
func Output(cmd *cobra.Command, defaultValue string) {
	cmd.Flags().StringP("out", "o", defaultValue, "Output file path")

	existingNormalize := cmd.Flags().GetNormalizeFunc()
	cmd.Flags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "output" {
			return pflag.NormalizedName("out")
		}
		if existingNormalize != nil {
			return existingNormalize(f, name)
		}

		return pflag.NormalizedName(name)
	})
}
