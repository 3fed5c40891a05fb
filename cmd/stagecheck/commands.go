package stagecheck

import (
	"fmt"

	"github.com/arthur-debert/stagecheck/internal/version"
	"github.com/arthur-debert/stagecheck/pkg/check"
	"github.com/arthur-debert/stagecheck/pkg/config"
	"github.com/arthur-debert/stagecheck/pkg/errors"
	"github.com/arthur-debert/stagecheck/pkg/render"
	"github.com/arthur-debert/stagecheck/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newLinkcheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "linkcheck",
		Short:   MsgLinkcheckShort,
		Long:    MsgLinkcheckLong,
		Args:    cobra.NoArgs,
		GroupID: "harness",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, nil)
			if err != nil {
				return err
			}
			return s.checker.Linkcheck(s.stage, s.host)
		},
	}
}

func newCargotestCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "cargotest",
		Short:   MsgCargotestShort,
		Long:    MsgCargotestLong,
		Args:    cobra.NoArgs,
		GroupID: "harness",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, nil)
			if err != nil {
				return err
			}
			return s.checker.Cargotest(s.stage, s.host)
		},
	}
}

// compiletestFlags are shared by compiletest and plan
type compiletestFlags struct {
	target string
	mode   string
	suite  string
}

func (f *compiletestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.target, "target", "", MsgFlagTarget)
	cmd.Flags().StringVar(&f.mode, "mode", "", MsgFlagMode)
	cmd.Flags().StringVar(&f.suite, "suite", "", MsgFlagSuite)

	modes := make([]string, 0, len(types.AllModes))
	for _, m := range types.AllModes {
		modes = append(modes, string(m))
	}
	suites := make([]string, 0, len(types.AllSuites))
	for _, s := range types.AllSuites {
		suites = append(suites, string(s))
	}
	_ = cmd.RegisterFlagCompletionFunc("mode", fixedCompletion(modes...))
	_ = cmd.RegisterFlagCompletionFunc("suite", fixedCompletion(suites...))
}

func (f *compiletestFlags) targetFor(s *session) types.Triple {
	if f.target == "" {
		return s.host
	}
	return types.Triple(f.target)
}

func (f *compiletestFlags) request(s *session) (types.TestRequest, error) {
	if f.mode == "" {
		return types.TestRequest{}, errors.Newf(errors.ErrInvalidInput, MsgErrMissingFlag, "mode")
	}
	if f.suite == "" {
		return types.TestRequest{}, errors.Newf(errors.ErrInvalidInput, MsgErrMissingFlag, "suite")
	}
	mode, err := types.ParseMode(f.mode)
	if err != nil {
		return types.TestRequest{}, err
	}
	suite, err := types.ParseSuite(f.suite)
	if err != nil {
		return types.TestRequest{}, err
	}
	return types.TestRequest{
		Kind:   types.KindCompiletest,
		Stage:  s.stage,
		Host:   s.host,
		Target: f.targetFor(s),
		Mode:   mode,
		Suite:  suite,
	}, nil
}

func newCompiletestCmd(opts *globalOptions) *cobra.Command {
	var flags compiletestFlags

	cmd := &cobra.Command{
		Use:     "compiletest --mode MODE --suite SUITE [-- ARGS...]",
		Short:   MsgCompiletestShort,
		Long:    MsgCompiletestLong,
		Example: MsgCompiletestExample,
		GroupID: "harness",
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, passthrough := splitPassthrough(cmd, args)
			if err := cobra.NoArgs(cmd, positional); err != nil {
				return err
			}
			s, err := newSession(cmd, opts, passthrough)
			if err != nil {
				return err
			}
			req, err := flags.request(s)
			if err != nil {
				return err
			}
			return s.checker.Run(req)
		},
	}
	flags.register(cmd)
	return cmd
}

func newStepsCmd(opts *globalOptions) *cobra.Command {
	var (
		target string
		list   bool
	)

	cmd := &cobra.Command{
		Use:     "steps [STEP...] [-- ARGS...]",
		Short:   MsgStepsShort,
		Long:    MsgStepsLong,
		GroupID: "harness",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return check.StepNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			names, passthrough := splitPassthrough(cmd, args)
			if list {
				t := types.Triple(target)
				if t == "" {
					t = types.Triple(opts.host)
				}
				if t == "" {
					t = config.DefaultTriple()
				}
				for _, step := range check.Steps(t) {
					fmt.Fprintf(cmd.OutOrStdout(), MsgStepItem, step.Name, step.Mode, step.Suite)
				}
				return nil
			}

			s, err := newSession(cmd, opts, passthrough)
			if err != nil {
				return err
			}
			t := types.Triple(target)
			if t == "" {
				t = s.host
			}
			return s.checker.RunSteps(s.compiler(), t, names...)
		},
	}
	cmd.Flags().StringVar(&target, "target", "", MsgFlagTarget)
	cmd.Flags().BoolVar(&list, "list", false, MsgFlagList)
	return cmd
}

func newPlanCmd(opts *globalOptions) *cobra.Command {
	var (
		flags  compiletestFlags
		format string
	)

	cmd := &cobra.Command{
		Use:       "plan KIND [STEP...] [-- ARGS...]",
		Short:     MsgPlanShort,
		Long:      MsgPlanLong,
		Example:   MsgPlanExample,
		GroupID:   "harness",
		ValidArgs: []string{"linkcheck", "cargotest", "compiletest", "steps"},
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, passthrough := splitPassthrough(cmd, args)
			if len(positional) == 0 {
				return errors.New(errors.ErrInvalidInput, "plan needs a KIND argument")
			}
			s, err := newSession(cmd, opts, passthrough)
			if err != nil {
				return err
			}

			var reqs []types.TestRequest
			switch positional[0] {
			case "linkcheck":
				reqs = append(reqs, types.TestRequest{Kind: types.KindLinkCheck, Stage: s.stage, Host: s.host})
			case "cargotest":
				reqs = append(reqs, types.TestRequest{Kind: types.KindCargoTest, Stage: s.stage, Host: s.host})
			case "compiletest":
				req, err := flags.request(s)
				if err != nil {
					return err
				}
				reqs = append(reqs, req)
			case "steps":
				reqs, err = check.StepRequests(s.compiler(), flags.targetFor(s), positional[1:]...)
				if err != nil {
					return err
				}
			default:
				return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownPlan, positional[0])
			}

			f := s.cfg.Format()
			if format != "" {
				if f, err = render.ParseFormat(format); err != nil {
					return err
				}
			}

			invs, err := s.checker.Plan(reqs...)
			if err != nil {
				return err
			}
			return render.Render(cmd.OutOrStdout(), f, invs...)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletion("text", "yaml", "toml"))
	return cmd
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultsContent())
				return err
			}
			s, err := newSession(cmd, opts, nil)
			if err != nil {
				return err
			}
			if s.cfg.Source != "" {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigSource, s.cfg.Source)
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(s.cfg)
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefault)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Args:    cobra.NoArgs,
		Hidden:  true,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "STAGECHECK",
				Section: "1",
				Source:  "stagecheck " + version.Version,
				Manual:  "stagecheck manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
