package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// When built with -buildmode=c-shared the host drives the exported
// ljclang_* entry points and main never runs. As a plain binary this is
// a small inspection tool for the same machinery.

var (
	showTypedefs = flag.Bool("typedefs", false, "print the emitted typedef block")
	showVersion  = flag.Bool("version", false, "print version information")
	astFile      = flag.String("ast", "", "dump the cursor tree of the given source file")
)

func main() {
	flag.Parse()

	switch {
	case *showVersion:
		fmt.Printf("ljclang support library (LLVM %s)\n", LLVMVersion())
		if !ffiEnabled {
			fmt.Println("native support: disabled in this build")
		}

	case *showTypedefs:
		block := TypeDefs()
		if block == "" {
			fail(ErrFFIDisabled)
		}
		// The block itself carries no separators; break it up for eyes.
		fmt.Println(strings.TrimSpace(strings.ReplaceAll(block, ";", ";\n")))

	case *astFile != "":
		if err := dumpAST(os.Stdout, *astFile); err != nil {
			fail(err)
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
