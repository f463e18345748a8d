package main

import "github.com/loomworks/agentry/cmd"

func main() {
	cmd.Execute()
}
