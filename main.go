package main

import "github.com/Rorical/SafeHer/cmd"

func main() {
	cmd.Execute()
}
