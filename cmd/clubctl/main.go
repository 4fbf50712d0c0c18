package main

import "github.com/mcoot/clubregistry/internal/cli"

func main() {
	cli.Execute()
}
