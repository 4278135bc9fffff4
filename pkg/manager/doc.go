// Package manager runs a live naming session on top of a storage
// backend: watch-mode reloads when session files change on disk,
// cron-scheduled autosaves, and syncing from a git-hosted conventions
// repository.
//
// The manager serializes whole-session operations with its own mutex;
// the underlying Session stays single-threaded by contract.
package manager
