// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command ipsetcat reads a v1 binary-format set and prints the addresses
// or CIDR networks it contains, one per line.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/go-ipset/ipbdd"
	"github.com/spf13/cobra"
)

func main() {
	var (
		inPath    string
		outPath   string
		summarize bool
	)

	root := &cobra.Command{
		Use:   "ipsetcat",
		Short: "Print the contents of a binary IP set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cat(inPath, outPath, summarize)
		},
	}
	root.Flags().StringVarP(&inPath, "input", "i", "", "input file (default stdin)")
	root.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	root.Flags().BoolVarP(&summarize, "networks", "n", false, "summarize into CIDR networks instead of individual addresses")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ipsetcat:", err)
		os.Exit(1)
	}
}

func cat(inPath, outPath string, summarize bool) error {
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
	w := bufio.NewWriter(out)
	defer w.Flush()

	it := set.Iterate(1, summarize)
	for it.Next() {
		addr, bits := it.Value()
		if summarize {
			fmt.Fprintf(w, "%s/%d\n", addr, bits)
		} else {
			fmt.Fprintln(w, addr)
		}
	}
	return nil
}
