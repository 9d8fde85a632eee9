package main

import "github.com/example/branch-scheduler/cmd"

func main() {
	cmd.Execute()
}
