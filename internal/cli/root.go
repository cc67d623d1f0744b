package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/slicer-infra/extcheck/internal/checks"
	"github.com/slicer-infra/extcheck/internal/config"
	"github.com/slicer-infra/extcheck/internal/logging"
	"github.com/slicer-infra/extcheck/internal/report"
	"github.com/slicer-infra/extcheck/internal/runner"
	"github.com/slicer-infra/extcheck/pkg/extcheck"
)

var rootCmd = &cobra.Command{
	Use:   "extcheck [flags] <description-file>...",
	Short: "Validate extension description files",
	Long: `extcheck validates extension description files (.s4ext) before they
are accepted into an extensions catalog.

Each file is parsed as line-oriented key/value metadata and run through
a configurable pipeline of independent checks. All failures for a file
are collected and reported together; files are processed strictly in
the order given.

Checks:
  scmurl-syntax        scmurl must look like scheme://host/path with a
                       git, https, or svn scheme (always on)
  scm-not-local        scm must not be the placeholder 'local' (always on)
  git-repository-name  git repositories should follow the Slicer naming
                       convention (off by default)

Configuration precedence for the optional check: the
--check-git-repository-name flag, then EXTCHECK_CHECK_GIT_REPOSITORY_NAME,
then extcheck.yaml in the working directory.

Exit Codes:
  0  - All description files passed
  N  - N validation failures were found (the count is the exit status)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration

An unreadable description file aborts the whole run with exit code 1.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runValidate,
}

var (
	flagCheckGitRepositoryName bool
	flagJSON                   bool
	flagNoColor                bool
)

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.Flags().BoolVar(&flagCheckGitRepositoryName, "check-git-repository-name", false,
		"Check extension git repository name. Disabled by default.")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Output the validation report as JSON")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable styled output")
}

func runValidate(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	projectCfg, err := loadProjectConfig(".")
	if err != nil {
		return err
	}

	enableRepositoryName := config.GitRepositoryNameEnabled(
		projectCfg,
		cmd.Flags().Changed("check-git-repository-name"),
		flagCheckGitRepositoryName,
	)
	logger.Verbose("git repository name check enabled: %v", enableRepositoryName)

	for _, path := range args {
		if !strings.HasSuffix(path, extcheck.DescriptionFileExtension) {
			logger.Verbose("%s does not have the %s suffix", path, extcheck.DescriptionFileExtension)
		}
	}

	checkRunner := runner.NewRunner(checks.Configured(enableRepositoryName), logger)
	aggregator := runner.NewAggregator(checkRunner, logger)

	result, err := aggregator.Run(args)
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(os.Stdout, !flagJSON && report.ColorsEnabled(flagNoColor))
	if flagJSON {
		err = renderer.RenderJSON(result)
	} else {
		err = renderer.RenderText(result)
	}
	if err != nil {
		return err
	}

	if !result.Passed() {
		return &extcheck.ValidationError{Count: result.TotalFailures}
	}
	return nil
}

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if extcheck.yaml does not exist (not an error).
func loadProjectConfig(sourcePath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(sourcePath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w: %w", config.ConfigFileName, extcheck.ErrInvalidConfig, err)
	}
	return projectCfg, nil
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
