package main

import "monument-catalog/cmd"

func main() {
	cmd.Execute()
}
