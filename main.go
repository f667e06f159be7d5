package main

import "github.com/mzeman/facegate/cmd"

func main() {
	cmd.Execute()
}
