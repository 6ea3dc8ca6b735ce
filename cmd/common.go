package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/zbiljic/emoji-commit-type/pkg/committype"
)

type (
	ctxKeyClackPromptStarted struct{}
)

func injectIntoCommandContextWithKey[K, V comparable](cmd *cobra.Command, key K, value V) {
	ctx := cmd.Context()
	ctx = context.WithValue(ctx, key, value)
	cmd.SetContext(ctx)
}

// allCommitTypes collects every commit type in declaration order.
func allCommitTypes() []committype.Type {
	it := committype.NewIterator()
	types := make([]committype.Type, 0, it.Remaining())
	for t, ok := it.Next(); ok; t, ok = it.Next() {
		types = append(types, t)
	}
	return types
}
