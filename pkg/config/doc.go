// Package config defines the YAML configuration for the vfxnaming tool:
// session repository location, storage backend selection, logging,
// watch mode, autosave and metrics settings.
//
// Configuration is loaded from a YAML file, merged with defaults,
// optionally overridden by VFXNAMING_* environment variables, and
// validated before use.
package config
