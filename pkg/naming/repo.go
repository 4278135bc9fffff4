package naming

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// RepoEnv is the environment variable overriding the default
	// session repository location.
	RepoEnv = "NAMING_REPO"

	// TokenExt and RuleExt are the file extensions of serialized
	// entities inside a session repository.
	TokenExt = ".token"
	RuleExt  = ".rule"

	// ConfigFile holds session-level settings, currently only the
	// active rule.
	ConfigFile = "naming.conf"

	settingActiveRule = "set_active_rule"
)

// DefaultRepo resolves the session repository directory: the RepoEnv
// environment variable if set, else ~/.NXATools/naming.
func DefaultRepo() (string, error) {
	if env := os.Getenv(RepoEnv); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", wrapError(KindIO, "", err, "cannot resolve home directory")
	}
	return filepath.Join(home, ".NXATools", "naming"), nil
}

// ResolveRepo returns override when non-empty, else DefaultRepo.
func ResolveRepo(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return DefaultRepo()
}

// SaveToken serializes one registered token to path.
func (s *Session) SaveToken(name, path string) error {
	tok, ok := s.tokens[name]
	if !ok {
		return newError(KindLookup, name, "token not found")
	}
	data, err := MarshalToken(tok)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return wrapError(KindIO, name, err, "cannot write token file")
	}
	return nil
}

// LoadToken reads a serialized token from path and registers it,
// replacing any token of the same name.
func (s *Session) LoadToken(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return wrapError(KindIO, "", err, "cannot read token file %q", path)
	}
	tok, err := UnmarshalToken(data)
	if err != nil {
		return err
	}
	s.PutToken(tok)
	return nil
}

// SaveRule serializes one registered rule to path.
func (s *Session) SaveRule(name, path string) error {
	rule, ok := s.rules[name]
	if !ok {
		return newError(KindLookup, name, "rule not found")
	}
	data, err := MarshalRule(rule)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return wrapError(KindIO, name, err, "cannot write rule file")
	}
	return nil
}

// LoadRule reads a serialized rule from path and registers it,
// replacing any rule of the same name.
func (s *Session) LoadRule(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return wrapError(KindIO, "", err, "cannot read rule file %q", path)
	}
	rule, err := UnmarshalRule(data)
	if err != nil {
		return err
	}
	s.PutRule(rule)
	return nil
}

// Save writes the whole session to dir (created if absent): one
// <name>.token file per token, one <name>.rule file per rule, and a
// naming.conf recording the active rule (null when none is set).
func (s *Session) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return wrapError(KindIO, "", err, "cannot create session repo %q", dir)
	}
	for name := range s.tokens {
		if err := s.SaveToken(name, filepath.Join(dir, name+TokenExt)); err != nil {
			return err
		}
	}
	for name := range s.rules {
		if err := s.SaveRule(name, filepath.Join(dir, name+RuleExt)); err != nil {
			return err
		}
	}
	return s.saveConfig(filepath.Join(dir, ConfigFile))
}

// Load reads every .token and .rule file under dir (recursively) into
// the session, then replays the naming.conf settings. Individual files
// that fail to read or decode are logged and skipped; one bad file
// does not abort the rest. Loaded entities merge into the live
// registries, replacing same-named ones. A dir that does not exist yet
// loads as an empty session, so first-run tools can load before
// anything was ever saved.
func (s *Session) Load(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		// A repository that was never saved is an empty session.
		return nil
	}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return wrapError(KindIO, "", err, "cannot walk session repo %q", dir)
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case TokenExt:
			if err := s.LoadToken(path); err != nil {
				s.logger.Warn("skipping unreadable token file", "path", path, "error", err)
			}
		case RuleExt:
			if err := s.LoadRule(path); err != nil {
				s.logger.Warn("skipping unreadable rule file", "path", path, "error", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return s.loadConfig(filepath.Join(dir, ConfigFile))
}

// Session settings are replayed through this closed table. New
// settings get a named handler here; unrecognized keys fail the load.
var settingHandlers = map[string]func(s *Session, value any) error{
	settingActiveRule: applySetActiveRule,
}

func applySetActiveRule(s *Session, value any) error {
	if value == nil {
		return nil
	}
	name, ok := value.(string)
	if !ok {
		return newError(KindConfig, "", "%s wants a rule name, got %T", settingActiveRule, value)
	}
	if !s.SetActiveRule(name) {
		s.logger.Warn("active rule from naming.conf is not registered", "rule", name)
	}
	return nil
}

func (s *Session) saveConfig(path string) error {
	settings := map[string]any{settingActiveRule: nil}
	if name := s.ActiveRuleName(); name != "" {
		settings[settingActiveRule] = name
	}
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return wrapError(KindIO, "", err, "cannot encode %s", ConfigFile)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return wrapError(KindIO, "", err, "cannot write %s", ConfigFile)
	}
	return nil
}

func (s *Session) loadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return wrapError(KindIO, "", err, "cannot read %s", ConfigFile)
	}
	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		return wrapError(KindConfig, "", err, "malformed %s", ConfigFile)
	}
	for key, value := range settings {
		handler, ok := settingHandlers[key]
		if !ok {
			return newError(KindConfig, "", "unrecognized session setting %q", key)
		}
		if err := handler(s, value); err != nil {
			return err
		}
	}
	return nil
}
