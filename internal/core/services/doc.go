// Package services implements the core pipeline logic: the rule
// registry, the rule engine that dispatches text through the rules in
// phase order, the token-window chunker, and the keyword domain
// classifier. Services depend on domain types and driven ports only.
package services
