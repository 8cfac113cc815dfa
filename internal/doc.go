// Package internal contains the core implementation packages for recomp.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the recomp CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - config: Flag-backed settings resolution for a single run
//   - errors: Error kinds distinguishing usage mistakes from runtime failures
//   - logging: Structured logging behind the --log-level flag
//   - naming: Identifier derivation from hyphenated names
//   - scaffolding: Artifact planning, template expansion, and the write sequence
//   - version: Build metadata stamped in at link time
//
// # Inter-Package Communication
//
// The command layer resolves flags through config, builds a scaffolding
// plan, and hands it to the generator. The naming package feeds the plan
// its identifier forms; errors carries failures back to the command layer,
// which decides whether usage help accompanies the message.
//
// For detailed documentation, see the individual package documentation.
package internal
