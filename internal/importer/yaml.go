package importer

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/libro-dev/libro/internal/catalog"
)

// YAMLParser reads a YAML list of operations:
//
//	- operation: compra_efectivo
//	  amount: "1000"
//	  account: Bancos
type YAMLParser struct {
	Accounts Resolver
}

type yamlOperation struct {
	Operation string          `yaml:"operation"`
	Amount    decimal.Decimal `yaml:"amount"`
	Cost      decimal.Decimal `yaml:"cost"`
	Percent   decimal.Decimal `yaml:"percent"`
	Months    int             `yaml:"months"`
	Account   string          `yaml:"account"`
}

// Format returns the parser name.
func (p *YAMLParser) Format() string { return "yaml" }

// Parse reads a YAML batch.
func (p *YAMLParser) Parse(r io.Reader) ([]catalog.Operation, error) {
	var raw []yamlOperation
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading batch YAML: %w", err)
	}

	var ops []catalog.Operation
	for i, y := range raw {
		kind, err := catalog.ParseKind(y.Operation)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		account, err := resolveAccount(p.Accounts, y.Account)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		ops = append(ops, catalog.Operation{
			Kind:    kind,
			Amount:  y.Amount,
			Cost:    y.Cost,
			Percent: y.Percent,
			Months:  y.Months,
			Account: account,
		})
	}
	return ops, nil
}
