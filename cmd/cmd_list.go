package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/zbiljic/emoji-commit-type/pkg/committype"
)

var listCmd = &cobra.Command{
	Use: "list",
	Aliases: []string{
		"ls",
	},
	Short:       "List the commit types",
	Long:        `Lists every commit type with its emoji and description, in declaration order.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runListE,
}

var listFlags = listOptions{
	Wide: false,
}

func listAddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&listFlags.Wide, "wide", "w", false, "Show a table with id, emoji, description and semver bump")
}

func init() {
	listAddFlags(listCmd)

	rootCmd.AddCommand(listCmd)
}

type listOptions struct {
	Wide bool
}

// renderTypeTable renders the commit types as a table with one row per type.
func renderTypeTable(types []committype.Type) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Type", "Emoji", "Description", "SemVer"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, t := range types {
		table.Append([]string{t.String(), t.Emoji(), t.Description(), t.BumpLevel().Name()})
	}

	table.Render()

	return tableBuffer.String()
}

func runListE(cmd *cobra.Command, args []string) error {
	types := allCommitTypes()

	if listFlags.Wide {
		fmt.Print(renderTypeTable(types))
		return nil
	}

	lines := slice.Map(types, func(_ int, t committype.Type) string {
		return fmt.Sprintf("%s  - %s", t.Emoji(), t.Description())
	})
	fmt.Println(strings.Join(lines, "\n"))

	return nil
}
