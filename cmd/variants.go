package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the configured variants and their descriptors",
	Long: `List every configured hardware variant together with the requirement
files and build files it bundles for comparison.`,
	Args: cobra.NoArgs,
	RunE: runVariants,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(variantsCmd)
}

func runVariants(_ *cobra.Command, _ []string) error {
	table, err := newVariantTable()
	if err != nil {
		return err
	}

	for _, name := range table.Names() {
		variant, _ := table.Lookup(name)
		fmt.Printf("%s:\n", name)
		for _, file := range variant.Requirements {
			fmt.Printf("  %s\n", file)
		}
		for _, file := range variant.BuildFiles {
			fmt.Printf("  %s\n", file)
		}
	}
	return nil
}
