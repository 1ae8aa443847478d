package main

import "fcptitles/cmd"

func main() {
	cmd.Execute()
}
