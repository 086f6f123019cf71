package main

import "github.com/ConnorGray/Markdown/cmd"

func main() {
	cmd.Execute()
}
