// SPDX-License-Identifier: MIT
// Package: victory/chartdata
//
// api.go — thin public entry point for the normalization pipeline.
//
// Design contract (strict):
//   - One orchestrator: GetData(cfg). Explicit data is formatted as-is;
//     absent data is synthesized from the configured domain first.
//   - Determinism: same (data, config) ⇒ byte-identical output.
//   - Safety: never panics; the only error is ErrInvalidDomain from
//     generation, wrapped once with %w at this boundary.
//   - Purity: caller data is read-only; every stage emits fresh
//     sequences and records, safe for concurrent readers afterwards.

package chartdata

import "fmt"

// GetData is the single public entry point surrounding render components
// use: format the explicit dataset when one is supplied (empty in, empty
// out; non-sequence in, empty out), otherwise generate the synthetic
// series, then annotate every record with its event key.
func GetData(cfg Config) ([]Datum, error) {
	if cfg.Data != nil {
		seq, ok := sequence(cfg.Data)
		if !ok || len(seq) == 0 {
			return []Datum{}, nil
		}
		return AddEventKeys(cfg, FormatData(seq, cfg)), nil
	}

	generated, err := GenerateData(cfg)
	if err != nil {
		return nil, fmt.Errorf("GetData: %w", err)
	}
	return AddEventKeys(cfg, FormatData(generated, cfg)), nil
}
