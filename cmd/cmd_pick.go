package cmd

import (
	"errors"
	"fmt"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"

	"github.com/zbiljic/emoji-commit-type/pkg/committype"
	"github.com/zbiljic/emoji-commit-type/pkg/termio"
)

var pickCmd = &cobra.Command{
	Use:         "pick",
	Short:       "Pick a commit type interactively",
	Long:        `Opens an interactive prompt to pick a commit type and prints its id and semver bump.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runPickE,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPickE(cmd *cobra.Command, args []string) error {
	if isNotTerminal {
		return errors.New("not a terminal")
	}

	prompts.Intro(picocolors.BgCyan(picocolors.Black(fmt.Sprintf(" %s ", AppName))))
	// in order to show custom error
	injectIntoCommandContextWithKey(cmd, ctxKeyClackPromptStarted{}, true)

	termio.ClearStdinBuffer()

	options := slice.Map(allCommitTypes(), func(_ int, t committype.Type) *prompts.SelectOption[committype.Type] {
		return &prompts.SelectOption[committype.Type]{
			Label: fmt.Sprintf("%s  %s", t.Emoji(), t.Description()),
			Value: t,
		}
	})

	selected, err := prompts.Select(prompts.SelectParams[committype.Type]{
		Message: fmt.Sprintf("Pick a commit type: %s", picocolors.Gray("(Ctrl+c to exit)")),
		Options: options,
	})
	if err != nil {
		if prompts.IsCancel(err) {
			prompts.Outro("Pick cancelled")
			return nil
		}
		return err
	}

	if bump := selected.BumpLevel(); bump == committype.BumpNone {
		prompts.Info(fmt.Sprintf("%s does not bump the version", picocolors.Cyan(selected.String())))
	} else {
		prompts.Info(fmt.Sprintf("%s bumps the %s version", picocolors.Cyan(selected.String()), picocolors.Bold(bump.Name())))
	}

	prompts.Outro(fmt.Sprintf("%s  %s", selected.Emoji(), selected.Description()))

	return nil
}
