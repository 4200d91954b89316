package main

import "github.com/gaurav-prasanna/jitadeck/cmd"

func main() {
	cmd.Execute()
}
