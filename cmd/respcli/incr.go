package main

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var incrCmd = &cobra.Command{
	Use:   "incrby <key> <n>",
	Short: "Increment a key by n (n may be negative)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := cast.ToInt64E(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("parse n: %w", err))
			os.Exit(1)
		}

		c, err := connect(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer c.Close()

		ctx, cancel := commandContext()
		defer cancel()

		result, err := c.IncrBy(ctx, args[0], n)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := printResult(result); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(incrCmd)
}
