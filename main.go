package main

import "migration-validator/cmd"

func main() {
	cmd.Execute()
}
