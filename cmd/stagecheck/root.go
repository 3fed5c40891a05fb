package stagecheck

import (
	"fmt"

	"github.com/arthur-debert/stagecheck/internal/version"
	"github.com/arthur-debert/stagecheck/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// DefaultStage is the stage tested when --stage is not given
const DefaultStage = 2

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "stagecheck",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	pf.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	pf.Uint32Var(&opts.stage, "stage", DefaultStage, MsgFlagStage)
	pf.StringVar(&opts.host, "host", "", MsgFlagHost)
	pf.StringVar(&opts.src, "src", "", MsgFlagSrc)
	pf.StringVar(&opts.out, "out", "", MsgFlagOut)
	pf.StringVar(&opts.color, "color", "", MsgFlagColor)

	_ = rootCmd.RegisterFlagCompletionFunc("color", fixedCompletion("auto", "always", "never"))
	_ = rootCmd.MarkPersistentFlagFilename("config", "toml")
	_ = rootCmd.MarkPersistentFlagDirname("src")
	_ = rootCmd.MarkPersistentFlagDirname("out")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "harness",
		Title: "HARNESSES:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(newLinkcheckCmd(opts))
	rootCmd.AddCommand(newCargotestCmd(opts))
	rootCmd.AddCommand(newCompiletestCmd(opts))
	rootCmd.AddCommand(newStepsCmd(opts))
	rootCmd.AddCommand(newPlanCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
