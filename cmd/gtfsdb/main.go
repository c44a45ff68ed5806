package main

import "github.com/openmobility/gtfsdb/internal/cli"

func main() {
	cli.Execute()
}
