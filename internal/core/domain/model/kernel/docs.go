// Package kernel contains shared value objects used across the fulfillment
// domain model: validated identifiers and monetary amounts. Types here are
// immutable; zero values are invalid and must be created through constructors.
package kernel
