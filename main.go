package main

import (
	"github.com/Arielyuan/RepeatMatcher/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
