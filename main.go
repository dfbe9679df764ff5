package main

import "github.com/KaramelBytes/kepner-cli/cmd"

func main() {
	cmd.Execute()
}
