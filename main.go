package main

import "seerr-cleaner/cmd"

func main() {
	cmd.Execute()
}
