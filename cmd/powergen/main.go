// Command powergen generates structurally unique ability graphs from a
// node-type library and prints their baked descriptions, optionally writing
// one Graphviz DOT file per graph.
package main

import "os"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
