package main

import (
	"os"

	"github.com/reddit/pppmagic/cmd/lib/magicgen"
)

func main() {
	os.Exit(magicgen.Run())
}
