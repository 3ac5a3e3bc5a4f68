package main

import "github.com/mcoot/mcmonitor/internal/cli"

func main() {
	cli.Execute()
}
