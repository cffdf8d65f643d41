package fstree_test

import (
	"fmt"

	logging "github.com/op/go-logging"

	"github.com/aoc-go/aocutils/fstree"
)

func init() {
	logging.SetLevel(logging.WARNING, "fstree")
}

func ExampleParseTranscript() {
	fs, err := fstree.ParseTranscript(sample)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	free, _ := fs.SmallestDirToFree(70000000, 30000000)
	fmt.Println(fs.DiskUsage(), fs.SumSmallDirs(100000), free)
	// Output: 48381165 95437 24933642
}
