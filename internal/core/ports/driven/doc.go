// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them:
//
//   - WhoisClient: fetches raw WHOIS text over the wire
//   - ResponseCache: persists raw responses between invocations
//   - ConfigStore: application configuration
//
// The parsing core itself (domain, registries) performs no I/O and does
// not depend on any of these.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: any adapter package
package driven
