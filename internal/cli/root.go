package cli

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/example/symlink-toggle/internal/logging"
	"github.com/example/symlink-toggle/internal/toggle"
	"github.com/example/symlink-toggle/internal/toggle/domain"
)

// Execute runs the root command and returns the process exit code.
// Help output exits with the usage code, matching the documented contract.
func Execute(args []string, fs afero.Fs, prompter Prompter, lookup toggle.EnvLookup, stdout, stderr io.Writer) int {
	root := NewRootCommand(fs, prompter, lookup, stdout, stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	helpShown := false
	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(c *cobra.Command, a []string) {
		helpShown = true
		defaultHelp(c, a)
	})

	if err := root.Execute(); err != nil {
		printErrorBanner(stderr, err)
		return domain.ExitCode(err)
	}
	if helpShown {
		return domain.ExitUsage
	}
	return domain.ExitOK
}

// NewRootCommand constructs the root Cobra command for lntoggle.
func NewRootCommand(fs afero.Fs, prompter Prompter, lookup toggle.EnvLookup, stdout, stderr io.Writer) *cobra.Command {
	var (
		flags       toggle.Config
		interactive bool
		verbosity   int
	)

	cmd := &cobra.Command{
		Use:   "lntoggle",
		Short: "Toggle a symlink between two candidate targets",
		Long: "lntoggle inspects a symlink and atomically repoints it at the other of\n" +
			"two candidate targets, either named explicitly or auto-detected from a\n" +
			"list of possible names.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(stdout, verbosity)

			cfg := toggle.MergeConfig(flags, lookup)
			if err := cfg.Validate(); err != nil {
				return err
			}

			svc, err := toggle.NewService(fs, logger)
			if err != nil {
				return err
			}

			logger.Info().Str("dir", cfg.Directory).Str("target", cfg.Target).
				Msg("toggle starting")

			cand, err := svc.ResolveCandidates(cfg)
			if err != nil {
				return err
			}
			current, err := svc.CurrentTarget(cfg)
			if err != nil {
				return err
			}
			next, err := cand.Other(current)
			if err != nil {
				return err
			}

			if interactive {
				label := fmt.Sprintf("Repoint %s: %s -> %s? (y/N)", cfg.Target, current, next)
				confirm, err := prompter.Confirm(label, false)
				if err != nil {
					return err
				}
				if !confirm {
					fmt.Fprintln(stdout, "Toggle cancelled.")
					return nil
				}
			}

			if err := svc.Apply(cfg, next); err != nil {
				return err
			}

			logger.Info().Msg("toggle complete")
			fmt.Fprintf(stdout, "Switched %s: %s -> %s\n", cfg.Target, current, next)
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	bindFlags(cmd.Flags(), &flags, &interactive, &verbosity)

	return cmd
}

func bindFlags(f *pflag.FlagSet, flags *toggle.Config, interactive *bool, verbosity *int) {
	f.StringVarP(&flags.Directory, "dir", "d", "", "Directory containing the link and its candidates (env CONFIG_PATH)")
	f.StringVarP(&flags.Target, "target", "t", "", "Name of the symlink to toggle (env TARGET)")
	f.StringVar(&flags.Source1, "source1", "", "First explicit candidate name (env SOURCE1)")
	f.StringVar(&flags.Source2, "source2", "", "Second explicit candidate name (env SOURCE2)")
	f.StringArrayVarP(&flags.Possible, "possible-value", "p", nil, "Candidate name to auto-detect, repeatable (env POSSIBLE_VALUES)")
	f.BoolVarP(interactive, "interactive", "i", false, "Confirm before repointing the link")
	f.CountVarP(verbosity, "verbose", "v", "Increase logging verbosity")
}
