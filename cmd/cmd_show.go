package cmd

import (
	"fmt"

	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"

	"github.com/zbiljic/emoji-commit-type/pkg/committype"
)

var showCmd = &cobra.Command{
	Use:         "show",
	Short:       "Show a single commit type",
	Long:        `Shows the emoji, description, semver bump and neighbours of a single commit type.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runShowE,
}

var showFlags = showOptions{
	Type: committype.Breaking,
}

func showAddFlags(cmd *cobra.Command) {
	addTypeFlag(cmd, &showFlags.Type)
}

func init() {
	showAddFlags(showCmd)

	rootCmd.AddCommand(showCmd)
}

type showOptions struct {
	Type committype.Type
}

func runShowE(cmd *cobra.Command, args []string) error {
	t := showFlags.Type

	fmt.Printf("%s  %s\n", t.Emoji(), picocolors.Bold(t.Description()))
	fmt.Printf("   %s %s\n", picocolors.Dim("Id:"), t.String())
	fmt.Printf("   %s %s\n", picocolors.Dim("SemVer:"), t.BumpLevel().Name())

	if prev, ok := t.Prev(); ok {
		fmt.Printf("   %s %s\n", picocolors.Dim("Prev:"), prev.String())
	}
	if next, ok := t.Next(); ok {
		fmt.Printf("   %s %s\n", picocolors.Dim("Next:"), next.String())
	}

	return nil
}
