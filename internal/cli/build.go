package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/rstlight/rstlight/internal/logging"
	"github.com/rstlight/rstlight/internal/ui/pretty"
	"github.com/rstlight/rstlight/pkg/builder"
	"github.com/rstlight/rstlight/pkg/config"
)

// ErrBuildFailed is returned when pages failed to render. It carries no
// message of its own: failures are reported before it is returned, it
// only signals the exit code.
var ErrBuildFailed = errors.New("build failed")

type buildFlags struct {
	sourceDir string
	outputDir string
	masterDoc string
	project   string
	style     string
	exclude   []string
	jobs      int
	clean     bool
	strict    bool
	report    bool
}

func newBuildCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the documentation site",
		Long: `Compile all source documents under the source directory into a
static HTML site.

Configuration is read from .rstlight.yaml in the working directory;
command-line flags override the file.

Examples:
  rstlight build                      # Build with .rstlight.yaml settings
  rstlight build --source docs        # Override the source directory
  rstlight build --clean              # Remove stale output first
  rstlight build --strict             # Fail on directive errors`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.sourceDir, "source", "", "source directory")
	cmd.Flags().StringVar(&flags.outputDir, "output", "", "output directory")
	cmd.Flags().StringVar(&flags.masterDoc, "master", "", "master document path (without extension)")
	cmd.Flags().StringVar(&flags.project, "project", "", "project name shown in page titles")
	cmd.Flags().StringVar(&flags.style, "style", "", "syntax highlighting style")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.clean, "clean", false, "remove the output directory before building")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat directive errors as build failures")
	cmd.Flags().BoolVar(&flags.report, "report", false, "print a per-page report")

	return cmd
}

func runBuild(cmd *cobra.Command, flags *buildFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := loadConfig(cmd, workDir)
	if err != nil {
		return err
	}

	applyBuildFlags(cmd, cfg, flags)

	if cfg.LogLevel != "" {
		if debug, flagErr := cmd.Flags().GetBool("debug"); flagErr != nil || !debug {
			logging.SetLevel(cfg.LogLevel)
		}
	}

	logger.Debug("configuration loaded",
		logging.FieldSourceDir, cfg.SourceDir,
		logging.FieldOutputDir, cfg.OutputDir,
		logging.FieldMasterDoc, cfg.MasterDoc,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldStrict, cfg.Strict,
	)

	b := builder.New(logger)
	result, err := b.Build(ctx, builder.Options{Config: cfg, WorkingDir: workDir})
	if err != nil {
		return errors.Join(errors.New("build run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	if flags.report {
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatPages(cmd.OutOrStdout(), result.Pages))
	} else {
		for _, page := range result.Pages {
			if page.Error != nil {
				fmt.Fprint(cmd.ErrOrStderr(), styles.FormatPageError(page))
			}
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.FormatSummaryOneLine(result.Stats))

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrBuildFailed
	}
	return nil
}

// loadConfig resolves the configuration: an explicit --config path, a
// discovered config file, or the defaults.
func loadConfig(cmd *cobra.Command, workDir string) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	if configPath != "" {
		cfg, loadErr := config.LoadFile(configPath)
		if loadErr != nil {
			return nil, loadErr
		}
		return cfg, nil
	}

	found, err := config.Find(workDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config.NewConfig(), nil
		}
		return nil, err
	}
	return config.LoadFile(found)
}

// applyBuildFlags overlays explicitly provided flags on the config.
func applyBuildFlags(cmd *cobra.Command, cfg *config.Config, flags *buildFlags) {
	if cmd.Flags().Changed("source") {
		cfg.SourceDir = flags.sourceDir
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = flags.outputDir
	}
	if cmd.Flags().Changed("master") {
		cfg.MasterDoc = flags.masterDoc
	}
	if cmd.Flags().Changed("project") {
		cfg.ProjectName = flags.project
	}
	if cmd.Flags().Changed("style") {
		cfg.HighlightStyle = flags.style
	}
	if cmd.Flags().Changed("exclude") {
		cfg.Exclude = flags.exclude
	}
	cfg.Jobs = flags.jobs
	cfg.Clean = flags.clean
	cfg.Strict = flags.strict
}
