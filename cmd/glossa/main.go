package main

import "github.com/glossalab/glossa/pkg/cli"

func main() {
	cli.Execute()
}
