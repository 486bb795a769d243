package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"emperror.dev/errors"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/drivesize/internal/drivesize"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "DRIVESIZE"

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"log", "table", "json"}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command(viper.New()).Execute()
}

// Command builds the root command reading its configuration through v.
func (c CLI) Command(v *viper.Viper) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "drivesize [flags] [root]",
		Short: "Report the size of every top-level directory on a drive",
		Long: heredoc.Doc(`
			drivesize reports the total size of the files below every directory
			directly under a root path, followed by the size of the whole drive.

			Files sitting directly under the root are not counted. Each directory
			is reported in GB, MB or KB depending on its size; the grand total is
			always in GB.

			Every run writes a debug log to the log directory, named after the
			root path and the start time.

			Configuration is read from flags, from DRIVESIZE_* environment
			variables (e.g. DRIVESIZE_ROOT_PATH) and from an optional
			.drivesize.yaml in the home or current directory.
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return readConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if v.GetBool("version") {
				fmt.Fprintln(cmd.OutOrStdout(), c.version)

				return nil
			}

			if len(args) == 1 {
				v.Set("root_path", args[0])
			}

			options, err := optionsFrom(v)
			if err != nil {
				return err
			}

			return logic(options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.drivesize.yaml)")
	flags.String("root-path", "", "Root path to scan (overridden by the positional argument)")
	flags.String("log-dir", "logs", "Directory to write the per-run log file to")
	flags.StringP("output", "o", "log", "Output format: log, table or json")
	flags.Bool("detailed", false, "Report every directory below the root's children separately")
	flags.Bool("count-dirs", true, "Count and log the directories before walking each child")
	flags.Bool("volume", false, "Log the capacity of the volume holding the root")
	flags.String("mb-threshold", humanize.Bytes(uint64(drivesize.DefaultThresholds.MB)),
		"Smallest size reported in MB (e.g. 4B, 1MiB)")
	flags.BoolP("version", "v", false, "Show version and exit")

	flags.SortFlags = false

	for _, name := range []string{"root-path", "log-dir", "output", "detailed", "count-dirs", "volume", "mb-threshold", "version"} {
		_ = v.BindPFlag(strings.ReplaceAll(name, "-", "_"), flags.Lookup(name))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

// readConfig loads cfgFile, or .drivesize.yaml from the home or current
// directory when cfgFile is empty. A missing default file is not an error.
func readConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)

		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %q: %w", cfgFile, err)
		}

		return nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	v.AddConfigPath(".")
	v.SetConfigName(".drivesize")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

// optionsFrom validates the configuration in v and builds scan options.
func optionsFrom(v *viper.Viper) (drivesize.Options, error) {
	options := drivesize.Options{
		Path:       v.GetString("root_path"),
		LogDir:     v.GetString("log_dir"),
		Output:     strings.ToLower(v.GetString("output")),
		Detailed:   v.GetBool("detailed"),
		CountDirs:  v.GetBool("count_dirs"),
		Volume:     v.GetBool("volume"),
		Thresholds: drivesize.DefaultThresholds,
	}

	if options.Path == "" {
		return options, errors.New("root path is required: pass it as an argument or set DRIVESIZE_ROOT_PATH")
	}

	if !slices.Contains(allowedOutputs, options.Output) {
		return options, fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
	}

	if options.LogDir == "" {
		options.LogDir = "logs"
	}

	// Parse threshold string to bytes
	if thresholdStr := v.GetString("mb_threshold"); thresholdStr != "" {
		size, err := humanize.ParseBytes(thresholdStr)
		if err != nil {
			return options, fmt.Errorf("invalid mb-threshold: %w", err)
		}

		options.Thresholds.MB = int64(size) //nolint:gosec // Size conversion from humanize is safe
	}

	if options.Thresholds.MB > options.Thresholds.GB {
		return options, fmt.Errorf("mb-threshold %d exceeds the GB threshold %d", options.Thresholds.MB, options.Thresholds.GB)
	}

	return options, nil
}
