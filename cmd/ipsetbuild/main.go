// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command ipsetbuild reads one textual IPv4 or IPv6 address or CIDR network
// per line and writes a v1 binary-format set to standard output (or the
// file named by -o).
package main

import (
	"bufio"
	"fmt"
	"net/netip"
	"os"
	"strings"

	"github.com/go-ipset/ipbdd"
	"github.com/spf13/cobra"
)

func main() {
	var outPath string

	root := &cobra.Command{
		Use:   "ipsetbuild [in...]",
		Short: "Build a binary IP set from textual addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return build(args, outPath)
		},
	}
	root.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ipsetbuild:", err)
		os.Exit(1)
	}
}

func build(inputs []string, outPath string) error {
	e := ipbdd.New()
	defer e.Teardown()
	set := ipbdd.NewSet(e)

	if len(inputs) == 0 {
		if err := addFrom(set, os.Stdin); err != nil {
			return err
		}
	}
	for _, path := range inputs {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = addFrom(set, f)
		f.Close()
		if err != nil {
			return err
		}
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
	return set.Save(out)
}

func addFrom(set *ipbdd.Set, r *os.File) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		prefix, err := parseLine(line)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", line, err)
		}
		if _, err := set.Add(prefix); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseLine(line string) (netip.Prefix, error) {
	if strings.Contains(line, "/") {
		return netip.ParsePrefix(line)
	}
	addr, err := netip.ParseAddr(line)
	if err != nil {
		return netip.Prefix{}, err
	}
	bits := ipbdd.MaxIPv4Bits
	if addr.Is6() && !addr.Is4In6() {
		bits = ipbdd.MaxIPv6Bits
	}
	return netip.PrefixFrom(addr, bits), nil
}
