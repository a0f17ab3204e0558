// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go: they depend only on the domain, the ports and the
// internal logger. Concurrency primitives, caching libraries and extraction
// engines all live behind driven ports.
package services
