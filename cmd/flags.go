package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"

	"github.com/zbiljic/emoji-commit-type/pkg/committype"
)

// addTypeFlag adds the commit type selection flag to a command
func addTypeFlag(cmd *cobra.Command, t *committype.Type) {
	cmd.Flags().VarP(enumflag.New(t, "type", committype.TypeIds, enumflag.EnumCaseInsensitive), "type", "t", "Commit type to use (breaking, feature, bugfix, other, meta)")
}
