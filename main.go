package main

import "github.com/uedeps/recdeps/cmd"

func main() {
	cmd.Execute()
}
