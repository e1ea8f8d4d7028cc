// Command hashpw prints bcrypt hashes for the given passwords, one per line,
// for seeding the users table by hand.
//
//	hashpw [-cost 10] password [password...]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/airline-booking/airline-ticket-booking/internal/adapter/auth"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-cost n] password [password...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(os.Stdout, *cost, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "hashpw:", err)
		os.Exit(1)
	}
}

func run(out io.Writer, cost int, passwords []string) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	hasher := auth.NewBcryptHasher(cost)
	for _, p := range passwords {
		hash, err := hasher.Hash(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%s\n", p, hash)
	}
	return nil
}
