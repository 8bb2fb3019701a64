package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

func main() {
	cli := &CLI{fs: afero.NewOsFs()}
	err := newRootCommand(cli).Execute()
	if cerr := cli.close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, red("Error: ")+err.Error())
		os.Exit(1)
	}
}
