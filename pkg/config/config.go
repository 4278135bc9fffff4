package config

import "time"

// Config is the root configuration for the vfxnaming tool.
type Config struct {
	// Repo is the session repository directory. When empty, the
	// NAMING_REPO environment variable or ~/.NXATools/naming is used.
	Repo string `yaml:"repo"`

	// Storage selects and configures the session store backend.
	Storage StorageConfig `yaml:"storage"`

	// Logging configures structured log output.
	Logging LoggingConfig `yaml:"logging"`

	// Watch configures watch mode (reload the session when its files
	// change on disk).
	Watch WatchConfig `yaml:"watch"`

	// Autosave configures periodic saving of the live session during
	// watch mode.
	Autosave AutosaveConfig `yaml:"autosave"`

	// Metrics configures the Prometheus endpoint served in watch mode.
	Metrics MetricsConfig `yaml:"metrics"`

	// Git configures an optional git-hosted session repository to sync
	// from.
	Git GitConfig `yaml:"git"`
}

// StorageConfig selects the session store backend.
type StorageConfig struct {
	// Backend is "file" (directory of .token/.rule files, the
	// interchange format) or "sqlite" (single database file).
	// Default: "file"
	Backend string `yaml:"backend"`

	// SQLite configures the sqlite backend.
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// SQLiteConfig configures the sqlite session store.
type SQLiteConfig struct {
	// Path is the database file path.
	// Default: "<repo>/naming.db"
	Path string `yaml:"path"`

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is "json", "text" or "console".
	// Default: "console"
	Format string `yaml:"format"`

	// AddSource includes file:line in log records.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	// Enabled turns on filesystem watching of the session repo.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// DebounceInterval is the quiet period after a file event before
	// the session is reloaded.
	// Default: 250ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`
}

// AutosaveConfig configures periodic session saving in watch mode.
type AutosaveConfig struct {
	// Schedule is a standard cron expression (e.g. "*/5 * * * *").
	// Empty disables autosave.
	Schedule string `yaml:"schedule"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	// Enabled turns on the /metrics endpoint in watch mode.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// ListenAddress is the address the metrics server binds to.
	// Default: "127.0.0.1:9464"
	ListenAddress string `yaml:"listen_address"`

	// Namespace and Subsystem prefix every metric name.
	// Defaults: "vfxnaming" / "session"
	Namespace string `yaml:"namespace"`
	Subsystem string `yaml:"subsystem"`
}

// GitConfig configures a git-hosted session repository.
type GitConfig struct {
	// Repository is the clone URL. Empty disables git sync.
	Repository string `yaml:"repository"`

	// Branch is the branch to track.
	// Default: "main"
	Branch string `yaml:"branch"`

	// LocalPath is where the repository is cloned.
	// Default: <os temp dir>/vfxnaming-conventions
	LocalPath string `yaml:"local_path"`

	// Depth limits clone history; 0 means full history.
	Depth int `yaml:"depth"`

	// Timeout bounds clone and pull operations.
	// Default: 60s
	Timeout time.Duration `yaml:"timeout"`

	// Auth configures repository authentication.
	Auth GitAuthConfig `yaml:"auth"`
}

// GitAuthConfig configures git authentication.
type GitAuthConfig struct {
	// Method is "none", "token", "basic" or "ssh".
	// Default: "none"
	Method string `yaml:"method"`

	// Token is the access token for the "token" method. The
	// VFXNAMING_GIT_TOKEN environment variable overrides it.
	Token string `yaml:"token"`

	// Username and Password serve the "basic" method.
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// SSHKeyPath is the private key for the "ssh" method.
	SSHKeyPath string `yaml:"ssh_key_path"`
}
