// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/wallet-core/tools/codegen/internal"
)

func main() {
	opts := codegen.Options{}
	flag.StringVar(&opts.Dir, "dir", ".", "directory holding the bundled certificate files")
	flag.StringVar(&opts.Output, "out", "registry_gen.go", "generated file, relative to -dir unless absolute")
	flag.StringVar(&opts.Package, "pkg", "certs", "package name of the generated file")
	flag.Parse()

	if err := codegen.GenerateRegistry(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating registry: %v\n", err)
		os.Exit(1)
	}
}
