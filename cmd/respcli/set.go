package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/respkv/client/command"
	"github.com/respkv/client/resp"
)

var setExpiry time.Duration

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set the string value of a key",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := connect(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer c.Close()

		ctx, cancel := commandContext()
		defer cancel()

		var opts []command.SetOption
		if setExpiry > 0 {
			opts = append(opts, command.WithExpiry(setExpiry))
		}

		if err := c.Set(ctx, args[0], resp.ArgString(args[1]), opts...); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := printResult("OK"); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	setCmd.Flags().DurationVar(&setExpiry, "expire", 0, "expire the key after this duration")
	rootCmd.AddCommand(setCmd)
}
