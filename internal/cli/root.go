// Package cli builds the cobra command tree and binds its flags to viper.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"localign/internal/config"
	"localign/internal/version"
)

// Handlers are the actions behind the commands. Each returns a process
// exit status.
type Handlers struct {
	Align func(ctx context.Context, c config.Config, inputs []string) int
	Runs  func(ctx context.Context, c config.Config, runID string) int
}

// ExitError carries a non-zero handler status out of Execute.
type ExitError struct{ Code int }

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

func exit(code int) error {
	if code == 0 {
		return nil
	}
	return &ExitError{Code: code}
}

// NewRootCommand returns the localign command with the runs subcommand
// attached. Flags are bound to v so that the precedence is
// flag > LOCALIGN_* env > --config file > default.
func NewRootCommand(v *viper.Viper, h Handlers) *cobra.Command {
	root := &cobra.Command{
		Use:   "localign [flags] FASTA...",
		Short: "Smith-Waterman local alignment of FASTA sequences",
		Long: `Find the best local alignment between sequences read from FASTA files.

By default the first two records are aligned. --mode query aligns the first
record against every other one and --mode all aligns every unordered pair.
Use '-' to read FASTA from STDIN; gzip input is detected automatically.`,
		Example: `  localign pair.fa
  localign -m 2 -s -3 -d -2 --pretty query.fa targets/*.fa.gz
  cat seqs.fa | localign --mode all -f jsonl -`,
		Version:                    version.String(),
		Args:                       cobra.ArbitraryArgs,
		SuggestionsMinimumDistance: 2,
		SilenceUsage:               true,
		SilenceErrors:              true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			c, err := load(cmd, v)
			if err != nil {
				return err
			}
			inputs, err := ExpandInputs(args)
			if err != nil {
				return err
			}
			return exit(h.Align(cmd.Context(), c, inputs))
		},
	}
	root.SetVersionTemplate("{{.Name}} version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.SortFlags = false
	pf.String("config", "", "YAML/TOML/JSON config file")
	pf.String("db", "", "record the run in this SQLite database")
	pf.BoolP("quiet", "q", false, "only log errors")
	pf.BoolP("verbose", "v", false, "log debug detail, including matrix fill progress")

	// output, shared with runs
	pf.StringP("format", "f", "text", "output format: text | json | jsonl | fasta")
	pf.StringP("output", "o", "", "write results to this file instead of STDOUT")
	pf.BoolP("alignment", "a", false, "include the aligned sequences")
	pf.Bool("pretty", false, "pretty ASCII alignment block (text)")
	pf.Int("width", 60, "columns per --pretty block (0 = no wrapping)")
	pf.Bool("no-header", false, "suppress header line in text output")
	pf.String("gap", "-", "gap symbol in aligned output")

	f := root.Flags()
	f.SortFlags = false
	// scoring
	f.IntP("match", "m", 1, "score for identical symbols")
	f.IntP("mismatch", "s", -10, "score for differing symbols")
	f.IntP("indel", "d", -1, "score for an insertion or deletion")
	// pairing
	f.String("mode", "first", "pairs to align: first | query | all")
	f.IntP("threads", "t", 0, "pairs aligned concurrently (0 = all CPUs)")
	f.Int("no-match-exit-code", 0, "exit status when no pair aligns")

	bind(v, pf)
	bind(v, f)

	root.AddCommand(newRunsCommand(v, h))
	return root
}

func newRunsCommand(v *viper.Viper, h Handlers) *cobra.Command {
	return &cobra.Command{
		Use:   "runs [RUN_ID]",
		Short: "List runs recorded with --db, or print the alignments of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := load(cmd, v)
			if err != nil {
				return err
			}
			if c.DB == "" {
				return fmt.Errorf("runs: --db is required")
			}
			var id string
			if len(args) == 1 {
				id = args[0]
			}
			return exit(h.Runs(cmd.Context(), c, id))
		},
	}
}

// bind registers every flag under its own name, except --config which
// selects the file rather than a setting.
func bind(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(fl *pflag.Flag) {
		if fl.Name == "config" {
			return
		}
		_ = v.BindPFlag(fl.Name, fl)
	})
}

func load(cmd *cobra.Command, v *viper.Viper) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(v, path)
}
