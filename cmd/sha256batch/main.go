package main

import "massnet.org/shasum/cmd/sha256batch/cmd"

func main() {
	cmd.Execute()
}
