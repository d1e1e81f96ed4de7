package main

import (
	"fmt"

	"github.com/goccy/go-json"
)

// printResult renders v either as plain text or, under --json, via
// goccy/go-json.
func printResult(v any) error {
	if !jsonOutput {
		fmt.Println(v)
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
