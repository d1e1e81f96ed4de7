// Command respcli is a small command-line client exercising the
// respkv/client library end to end: dial a server, issue one command,
// print the result.
package main

func main() {
	Execute()
}
