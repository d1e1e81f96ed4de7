package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/respkv/client/client"
	"github.com/respkv/client/internal/config"
)

var (
	configPath  string
	network     string
	address     string
	credential  string
	cooperative bool
	jsonOutput  bool
	dialTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "respcli",
	Short: "A command-line client for a RESP-compatible server",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML connection config file")
	rootCmd.PersistentFlags().StringVar(&network, "network", "tcp", "network to dial (tcp, unix)")
	rootCmd.PersistentFlags().StringVar(&address, "address", "127.0.0.1:6379", "address to dial")
	rootCmd.PersistentFlags().StringVar(&credential, "credential", "", "AUTH credential; empty skips authentication")
	rootCmd.PersistentFlags().BoolVar(&cooperative, "cooperative", false, "use the ants.Pool-backed cooperative transport driver")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON via goccy/go-json")
	rootCmd.PersistentFlags().DurationVar(&dialTimeout, "dial-timeout", 5*time.Second, "dial timeout")
}

// Execute runs the CLI, exiting the process with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// connect resolves --config and the individual connection flags into a
// dialed, ready-to-use Client. Flags take precedence over a loaded
// config file's corresponding field when explicitly set.
func connect(cmd *cobra.Command) (*client.Client, error) {
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
			return nil, fmt.Errorf("load config: %w", err)
		}
		if !cmd.Flags().Changed("network") {
			conn.Network = loaded.Network
		}
		if !cmd.Flags().Changed("address") {
			conn.Address = loaded.Address
		}
		if !cmd.Flags().Changed("credential") {
			conn.Credential = loaded.Credential
		}
		if !cmd.Flags().Changed("cooperative") {
			conn.Cooperative = loaded.Cooperative
		}
		if !cmd.Flags().Changed("dial-timeout") && loaded.DialTimeout > 0 {
			conn.DialTimeout = loaded.DialTimeout
		}
		conn.Log = loaded.Log
	}

	logger, err := buildLogger(conn)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	opts := []client.Option{client.WithLogger(logger)}
	if conn.Cooperative {
		opts = append(opts, client.WithCooperativeTransport())
	}

	ctx, cancel := context.WithTimeout(context.Background(), conn.DialTimeout)
	defer cancel()

	if conn.Credential != "" {
		return client.WithAuth(ctx, conn.Network, conn.Address, conn.Credential, opts...)
	}
	return client.DialContext(ctx, conn.Network, conn.Address, opts...)
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
