// Package driving defines interfaces that external actors (CLI, other
// drivers) use to run the preprocessing pipeline. These are the
// "driving" ports in hexagonal architecture terminology - they drive
// the application.
//
// Implementations of these interfaces live in internal/core/services.
package driving
