package cmd

import (
	"fmt"
	"strings"

	"github.com/coreos/go-semver/semver"
	"github.com/spf13/cobra"

	"github.com/zbiljic/emoji-commit-type/pkg/committype"
)

var bumpCmd = &cobra.Command{
	Use:         "bump <version>",
	Short:       "Bump a version for a commit type",
	Long:        `Applies the semver bump of a commit type to the given version and prints the result.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.ExactArgs(1),
	RunE:        runBumpE,
}

var bumpFlags = bumpOptions{
	Type: committype.Bugfix,
}

func bumpAddFlags(cmd *cobra.Command) {
	addTypeFlag(cmd, &bumpFlags.Type)
}

func init() {
	bumpAddFlags(bumpCmd)

	rootCmd.AddCommand(bumpCmd)
}

type bumpOptions struct {
	Type committype.Type
}

// bumpVersion applies the semver bump of the given commit type to a version
// string. A leading "v" is preserved in the result.
func bumpVersion(raw string, t committype.Type) (string, error) {
	hadPrefix := strings.HasPrefix(raw, "v")

	version, err := semver.NewVersion(strings.TrimPrefix(raw, "v"))
	if err != nil {
		return "", fmt.Errorf("invalid version %q: %w", raw, err)
	}

	t.BumpLevel().Apply(version)

	if hadPrefix {
		return "v" + version.String(), nil
	}

	return version.String(), nil
}

func runBumpE(cmd *cobra.Command, args []string) error {
	bumped, err := bumpVersion(args[0], bumpFlags.Type)
	if err != nil {
		return err
	}

	fmt.Println(bumped)

	return nil
}
