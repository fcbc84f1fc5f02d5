package main

import "github.com/twiced-technology-gmbh/flowdo/cmd"

func main() {
	cmd.Execute()
}
