package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/coregx/minire"
	"github.com/coregx/minire/syntax"
)

func newExplainCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "explain PATTERN",
		Short: "Show the tokens, tree and search strategy of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return explain(cmd.OutOrStdout(), args[0], strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject unterminated '[' and '('")

	return cmd
}

// explain prints how pattern is compiled:
//
//	pattern:   [hH]ello
//	tokens:
//	  '[' (class open) at position 0
//	  ...
//	tree:      (chain ['h' 'H'] 'e' 'l' 'l' 'o')
//	strategy:  UseLiteral
//	prefixes:  [literal{hello, complete=true}, literal{Hello, complete=true}] (shortest 5 bytes)
//	prefilter: aho-corasick(2 literals), 10 heap bytes
func explain(w io.Writer, pattern string, strict bool) error {
	tokens, err := syntax.Tokenize(pattern)
	if err != nil {
		return err
	}

	config := minire.DefaultConfig()
	config.StrictDelimiters = strict
	re, err := minire.CompileWithConfig(pattern, config)
	if err != nil {
		return err
	}
	engine := re.Engine()

	fmt.Fprintf(w, "pattern:   %s\n", pattern)
	fmt.Fprintln(w, "tokens:")
	for _, tok := range tokens {
		fmt.Fprintf(w, "  %s\n", tok)
	}
	fmt.Fprintf(w, "tree:      %s\n", engine.Root())
	fmt.Fprintf(w, "strategy:  %s\n", engine.Strategy())
	if prefixes := engine.Prefixes(); prefixes != nil && !prefixes.IsEmpty() {
		fmt.Fprintf(w, "prefixes:  %s (shortest %d bytes)\n", prefixes, prefixes.MinLen())
	}
	if pf := engine.Prefilter(); pf != nil {
		fmt.Fprintf(w, "prefilter: %s, %d heap bytes\n", pf.Name(), pf.HeapBytes())
	}
	return nil
}
