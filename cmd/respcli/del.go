package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var delCmd = &cobra.Command{
	Use:   "del <key> [key ...]",
	Short: "Delete one or more keys",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := connect(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer c.Close()

		ctx, cancel := commandContext()
		defer cancel()

		n, err := c.Del(ctx, args...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := printResult(n); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(delCmd)
}
