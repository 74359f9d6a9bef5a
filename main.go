package main

import "fips/cmd"

func main() {
	cmd.Execute()
}
