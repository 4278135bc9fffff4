// Package logging builds the structured slog logger used across the
// vfxnaming tool and provides context helpers for carrying a logger
// and a per-operation ID through call chains.
package logging
