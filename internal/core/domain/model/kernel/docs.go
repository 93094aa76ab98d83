// Package kernel contains shared value objects used across the domain
// model: identifiers and construction guards. Everything here is immutable
// and safe for concurrent use.
package kernel
