// Command bankist runs a single Bankist session in the terminal.
package main

import (
	"flag"
	"log"
	"os"

	"bankist.dev/bankist/pkg/bankist"
)

func main() {
	seed := flag.String("seed", "", "YAML file with the accounts to load (default: demo accounts)")
	flag.Parse()

	accounts := bankist.DefaultAccounts()
	if *seed != "" {
		var err error
		accounts, err = bankist.LoadSeed(*seed)
		if err != nil {
			log.Fatalf("Failed to load seed accounts: %v", err)
		}
	}

	c := newConsole(bankist.NewSession(bankist.NewStore(accounts)), os.Stdout)
	if err := c.run(os.Stdin); err != nil {
		log.Fatal(err)
	}
}
