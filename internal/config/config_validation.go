// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Only invariants that would make the server unusable are checked here;
// connectivity problems (bad DSN credentials, unreachable host) surface at
// connection time with better diagnostics.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
