package main

import "github.com/yusan117/medtyping/cmd"

func main() {
	cmd.Execute()
}
