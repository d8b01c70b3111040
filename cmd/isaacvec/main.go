// Command isaacvec prints reference output vectors for the isaac64
// generator, so ports in other languages can be validated against the
// known-good sequence.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zeebo/isaac64"
)

func main() {
	var (
		count   = flag.Int("n", 20, "values to print per seed")
		modulus = flag.Uint64("mod", 100, "modulus for the reduced sequence")
	)
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"42", "0", "12345"}
	}

	for _, arg := range args {
		seed, err := isaac64.ParseSeed(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Printf("=== seed %s ===\n", arg)

		fmt.Println("raw u64 values:")
		g := isaac64.New(seed)
		for i := 0; i < *count; i++ {
			fmt.Printf("  %d\n", g.Uint64())
		}

		// fresh state so the reduced sequence starts from the top
		fmt.Printf("mod %d values:\n", *modulus)
		g = isaac64.New(seed)
		for i := 0; i < *count; i++ {
			fmt.Printf("  %d\n", g.Uint64() % *modulus)
		}
		fmt.Println()
	}
}
