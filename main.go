package main

import "github.com/Pjt727/classwatch/cmd"

func main() {
	cmd.Execute()
}
