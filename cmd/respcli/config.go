package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/respkv/client/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the connection config without dialing: the --config file if given, else the flags",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		conn := config.Connection{
			Network:     network,
			Address:     address,
			Credential:  credential,
			Cooperative: cooperative,
			DialTimeout: dialTimeout,
			Log:         config.LogOptions{Stdout: true, Level: "info"},
		}
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			conn = loaded
		}
		conn.Credential = redactCredential(conn.Credential)

		if jsonOutput {
			if err := printResult(conn); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}

		b, err := yaml.Marshal(conn)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Print(string(b))
	},
}

func redactCredential(credential string) string {
	if credential == "" {
		return ""
	}
	return "***"
}

func init() {
	rootCmd.AddCommand(configCmd)
}
