package main

import "storage-sdk/cmd"

func main() {
	cmd.Execute()
}
