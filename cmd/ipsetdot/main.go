// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command ipsetdot reads a v1 binary-format set and renders its underlying
// BDD as a GraphViz graph.
package main

import (
	"fmt"
	"os"

	"github.com/go-ipset/ipbdd"
	"github.com/spf13/cobra"
)

func main() {
	var (
		inPath  string
		outPath string
	)

	root := &cobra.Command{
		Use:   "ipsetdot",
		Short: "Render a binary IP set's BDD as GraphViz",
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(inPath, outPath)
		},
	}
	root.Flags().StringVarP(&inPath, "input", "i", "", "input file (default stdin)")
	root.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ipsetdot:", err)
		os.Exit(1)
	}
}

func render(inPath, outPath string) error {
	in := os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	e := ipbdd.New()
	defer e.Teardown()

	set, err := ipbdd.Load(e, in)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return e.WriteDot(out, set.Root())
}
