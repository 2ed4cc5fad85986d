package bankist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultAccounts returns the four demo accounts.
func DefaultAccounts() []*Account {
	return []*Account{
		NewAccount("Jonas Schmedtmann", []float64{200, 450, -400, 3000, -650, -130, 70, 1300}, 1.2, 1111),
		NewAccount("Jessica Davis", []float64{5000, 3400, -150, -790, -3210, -1000, 8500, -30}, 1.5, 2222),
		NewAccount("Steven Thomas Williams", []float64{200, -200, 340, -300, -20, 50, 400, -460}, 0.7, 3333),
		NewAccount("Sarah Smith", []float64{430, 1000, 700, 50, 90}, 1, 4444),
	}
}

type seedFile struct {
	Accounts []seedAccount `yaml:"accounts"`
}

type seedAccount struct {
	Owner        string    `yaml:"owner"`
	Movements    []float64 `yaml:"movements"`
	InterestRate float64   `yaml:"interest_rate"`
	Pin          int       `yaml:"pin"`
}

// LoadSeed reads accounts from a YAML file of the form
//
//	accounts:
//	  - owner: Jonas Schmedtmann
//	    movements: [200, 450, -400]
//	    interest_rate: 1.2
//	    pin: 1111
func LoadSeed(path string) ([]*Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	if len(f.Accounts) == 0 {
		return nil, fmt.Errorf("seed file %s has no accounts", path)
	}

	accounts := make([]*Account, 0, len(f.Accounts))
	for i, sa := range f.Accounts {
		if len(Username(sa.Owner)) == 0 {
			return nil, fmt.Errorf("seed file %s: account %d has no owner", path, i)
		}
		accounts = append(accounts, NewAccount(sa.Owner, sa.Movements, sa.InterestRate, sa.Pin))
	}
	return accounts, nil
}
