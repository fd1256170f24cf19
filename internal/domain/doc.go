// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/symbol, domain/narrative,
// domain/syntax). This root package holds the closed error taxonomy of the
// compiler and reader: sentinel errors for errors.Is checks, typed errors
// carrying symbol names and source locations, and the Diagnostics batch type.
package domain
