package cmd

import (
	"context"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reqdiff/internal/render"
)

const defaultRepo = "vllm-project/vllm"

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	// Global flags
	configPath string
	verbose    bool

	// Compare flags
	noPretty   bool
	sourceName string
	repoRef    string
	localPath  string
	authToken  string
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "reqdiff <old-revision> <new-revision> <variant-or-file>",
	Short: "Compare dependency manifests between two repository revisions",
	Long: `Compare pip requirement files and container build-file ARG declarations
between two labeled revisions (tags, branches, or commits) of a repository.

A hardware variant (rocm, cuda, cpu, tpu, xpu) selects the bundle of files
conventionally compared together; any other selector is treated as a single
file name. The report categorizes every difference as changed, added,
removed, or special and flattens them into one cross-file summary table.`,
	Example: `  reqdiff v0.13.0 v0.14.0 rocm                    # compare the rocm bundle
  reqdiff v0.13.0 v0.14.0 rocm-build.txt          # compare one requirements file
  reqdiff v0.13.0 v0.14.0 docker/Dockerfile.rocm  # compare one build file
  reqdiff v0.13.0 v0.14.0 cuda --source local --path ~/src/vllm`,
	Args: cobra.ExactArgs(3),
	RunE: runCompare,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to a variant config file (default: auto-detect, then built-ins)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.Flags().BoolVar(&noPretty, "no-pretty", false,
		"Show simple signed-line output instead of the categorized report")
	rootCmd.Flags().StringVar(&sourceName, "source", "raw",
		"Content source: raw, github, or local")
	rootCmd.Flags().StringVar(&repoRef, "repo", defaultRepo,
		"Repository (owner/name) for remote sources")
	rootCmd.Flags().StringVar(&localPath, "path", ".",
		"Path to a local clone for the local source")
	rootCmd.Flags().StringVar(&authToken, "token", "",
		"GitHub API token (or set GITHUB_TOKEN)")
}

func runCompare(_ *cobra.Command, args []string) error {
	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	ctx := context.Background()

	svc, err := buildCompareService()
	if err != nil {
		return err
	}

	result, err := svc.Compare(ctx, args[0], args[1], args[2])
	if err != nil {
		return err
	}

	render.New(!noPretty).Render(os.Stdout, result)

	if len(result.Skipped) > 0 {
		logger.Warnf("Skipped %d descriptor(s): %v", len(result.Skipped), result.Skipped)
	}
	return nil
}
