package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/game-narrative-script/pkg/gcs"
)

func newActsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "acts TREE",
		Short: "List the acts of a compiled story",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := gcs.Open(args[0])
			if err != nil {
				return err
			}
			defer w.Close()

			for _, act := range w.Acts() {
				fmt.Fprintln(cmd.OutOrStdout(), act)
			}
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show TREE ACT",
		Short: "Print the items of one act",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := gcs.Open(args[0])
			if err != nil {
				return err
			}
			defer w.Close()

			items, err := w.Traverse(args[1])
			if err != nil {
				return err
			}
			printItems(cmd.OutOrStdout(), items)
			return nil
		},
	}
}

// printItems renders items one per line, choice options indented below
// their speaker.
func printItems(out io.Writer, items []gcs.Item) {
	for _, it := range items {
		speaker := it.Character
		if it.DisplayName != "" {
			speaker = fmt.Sprintf("%s (%s)", it.DisplayName, it.Character)
		}

		switch it.Kind {
		case gcs.KindChoiceSet:
			fmt.Fprintf(out, "%s:\n", speaker)
			for i, c := range it.Choices {
				fmt.Fprintf(out, "  %d. %s -> %s\n", i+1, c.Text, c.Jump)
			}
		default:
			fmt.Fprintf(out, "%s: %s\n", speaker, it.Text)
		}

		if len(it.Attributes) > 0 {
			pairs := make([]string, len(it.Attributes))
			for i, a := range it.Attributes {
				pairs[i] = a.Key + "=" + a.Value
			}
			fmt.Fprintf(out, "  [%s]\n", strings.Join(pairs, " "))
		}
	}
}
