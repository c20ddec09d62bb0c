package main

import "content-sync/cmd"

func main() {
	cmd.Execute()
}
