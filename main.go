package main

import "github.com/lusp-lang/lusp/cmd"

func main() {
	cmd.Execute()
}
