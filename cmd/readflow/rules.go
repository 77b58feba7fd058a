package main

import (
	"encoding/json"
	"fmt"

	"readflow"
)

// Run executes the rules command.
func (c *RulesCmd) Run(deps *Dependencies) error {
	host := readflow.NormalizeHost(c.Host)
	cfg, err := deps.Resolver.BuildForHost(host, true)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readflow.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}
