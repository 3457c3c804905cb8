package main

import "blob-store/cmd"

func main() {
	cmd.Execute()
}
