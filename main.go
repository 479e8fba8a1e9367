package main

import "github.com/Rorical/roricalc/cmd"

func main() {
	cmd.Execute()
}
