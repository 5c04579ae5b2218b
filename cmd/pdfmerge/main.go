package main

import "github.com/blanc86/PDF-Merger/internal/cli"

func main() {
	cli.Execute()
}
