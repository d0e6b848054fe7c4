// Command netprofile resolves the network profiles and build tool configuration of a contract
// project.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/netprofile/engine/commands"
	"github.com/smartcontractkit/netprofile/engine/commands/text"
	"github.com/smartcontractkit/netprofile/pkg/logger"
)

var rootLong = text.LongDesc(`
	Resolves the network profiles and build tool configuration of a contract project.

	The local development network is always available. Remote networks are added when the
	RPC access key and signer key are present in the environment or a dotenv file.
`)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)

	lggr, err := logger.NewLeveled(lvl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)

		return 1
	}
	defer func() { _ = lggr.Sync() }()

	root, err := newRootCmd(lggr, lvl)
	if err != nil {
		lggr.Errorw("Failed to create commands", "error", err)

		return 1
	}

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return 1
	}

	return 0
}

// newRootCmd creates the root command. The --log-level flag adjusts lvl before any subcommand
// runs.
func newRootCmd(lggr logger.Logger, lvl zap.AtomicLevel) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:          "netprofile",
		Short:        "Network profile resolver for contract projects",
		Long:         rootLong,
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s, err := cmd.Flags().GetString("log-level")
			if err != nil {
				return err
			}

			level, err := logger.ParseLevel(s)
			if err != nil {
				return err
			}
			lvl.SetLevel(level)

			return nil
		},
	}

	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	subs, err := commands.New(lggr).All()
	if err != nil {
		return nil, err
	}
	root.AddCommand(subs...)

	return root, nil
}
