// Package kernel contains shared value objects used across all domain
// aggregates: opaque UUID identifiers and the caller identity (Actor with a
// Role) that every mutating operation receives explicitly. The kernel has no
// dependencies on other domain packages.
package kernel
