package main

import "github.com/alexiusacademia/gobeam/cmd"

func main() {
	cmd.Execute()
}
