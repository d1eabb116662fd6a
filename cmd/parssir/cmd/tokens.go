package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [expression]",
	Short: "Dump the classified token stream of an expression",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := sampleExpression
		if len(args) > 0 {
			input = args[0]
		}

		engine, err := buildEngine()
		if err != nil {
			printError("failed to initialize engine", err)
			return err
		}

		tokens, err := engine.Tokenize(input)
		if err != nil {
			printError("tokenization failed", err)
			return err
		}

		for _, tok := range tokens {
			fmt.Printf("%3d:%-3d %s\n", tok.Line, tok.Column, tok.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
