package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/respkv/client/resp"
)

var rawCmd = &cobra.Command{
	Use:   "raw <name> [arg ...]",
	Short: "Issue an arbitrary command with no dedicated builder",
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

		cmdArgs := make([]resp.Arg, 0, len(args)-1)
		for _, a := range args[1:] {
			cmdArgs = append(cmdArgs, resp.ArgString(a))
		}

		v, err := c.Raw(ctx, args[0], cmdArgs...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := printResult(v); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(rawCmd)
}
