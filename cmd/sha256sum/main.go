package main

import "massnet.org/shasum/cmd/sha256sum/cmd"

func main() {
	cmd.Execute()
}
