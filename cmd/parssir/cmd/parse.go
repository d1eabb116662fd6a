package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SatinWukerORIG/parssir/ast"
)

// sampleExpression is parsed when no argument is given
const sampleExpression = "1 + 2 * 3"

var parseCmd = &cobra.Command{
	Use:   "parse [expression]",
	Short: "Parse an expression and print its tree",
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

		expr, err := engine.Parse(input)
		if err != nil {
			printError("parse failed", err)
			return err
		}

		if expr == nil {
			fmt.Println("(empty expression)")
			return nil
		}

		fmt.Printf("input: %s\n", input)
		fmt.Printf("infix: %s\n", ast.Infix(expr))
		fmt.Print(ast.ASTToString(expr))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
