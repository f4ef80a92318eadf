// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// For this tool that is one pipeline: fetch raw WHOIS text (or reuse a
// cached response), then hand it to the registries dispatcher for parsing.
package services
