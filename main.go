package main

import "github.com/KaramelBytes/sitedocs/cmd"

func main() {
	cmd.Execute()
}
