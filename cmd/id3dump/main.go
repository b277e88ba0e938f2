package main

import (
	"github.com/simonhull/id3tags/cmd/id3dump/cmd"
)

func main() {
	cmd.Execute()
}
