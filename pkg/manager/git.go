package manager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"

	"github.com/obrakeo/vfxnaming/pkg/config"
)

// SyncResult describes the outcome of a git sync.
type SyncResult struct {
	FromSHA    string
	ToSHA      string
	HadChanges bool
}

// GitRepo keeps a local clone of a git-hosted conventions repository
// in sync with its remote. The clone directory then serves as the
// session repository for a file store or a watcher.
type GitRepo struct {
	cfg  *config.GitConfig
	auth authProvider
	repo *gogit.Repository
	mu   sync.Mutex
}

// NewGitRepo creates a git sync handle from configuration. The
// configuration must name a repository URL.
func NewGitRepo(cfg *config.GitConfig) (*GitRepo, error) {
	if cfg == nil || cfg.Repository == "" {
		return nil, fmt.Errorf("git repository URL is required")
	}
	auth, err := newAuthProvider(&cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("configure git auth: %w", err)
	}
	return &GitRepo{cfg: cfg, auth: auth}, nil
}

// LocalPath returns the directory holding the clone.
func (g *GitRepo) LocalPath() string { return g.cfg.LocalPath }

// Clone ensures the local clone exists, opening it when already
// present and cloning the configured branch otherwise.
func (g *GitRepo) Clone(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := os.Stat(filepath.Join(g.cfg.LocalPath, ".git")); err == nil {
		repo, err := gogit.PlainOpen(g.cfg.LocalPath)
		if err != nil {
			return fmt.Errorf("open existing clone: %w", err)
		}
		g.repo = repo
		return nil
	}

	if err := os.MkdirAll(g.cfg.LocalPath, 0o755); err != nil {
		return fmt.Errorf("create clone directory: %w", err)
	}

	auth, err := g.auth.AuthMethod()
	if err != nil {
		return fmt.Errorf("git auth: %w", err)
	}

	cloneCtx, cancel := g.opContext(ctx)
	defer cancel()

	repo, err := gogit.PlainCloneContext(cloneCtx, g.cfg.LocalPath, false, &gogit.CloneOptions{
		URL:           g.cfg.Repository,
		ReferenceName: plumbing.NewBranchReferenceName(g.cfg.Branch),
		SingleBranch:  g.cfg.Depth > 0,
		Depth:         g.cfg.Depth,
		Auth:          auth,
	})
	if err != nil {
		return fmt.Errorf("clone %q: %w", g.cfg.Repository, err)
	}
	g.repo = repo
	return nil
}

// Pull fetches the latest changes from the remote and reports whether
// HEAD moved.
func (g *GitRepo) Pull(ctx context.Context) (*SyncResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.repo == nil {
		return nil, fmt.Errorf("repository not cloned, call Clone first")
	}

	ref, err := g.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("read HEAD: %w", err)
	}
	fromSHA := ref.Hash().String()

	worktree, err := g.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	auth, err := g.auth.AuthMethod()
	if err != nil {
		return nil, fmt.Errorf("git auth: %w", err)
	}

	pullCtx, cancel := g.opContext(ctx)
	defer cancel()

	err = worktree.PullContext(pullCtx, &gogit.PullOptions{
		RemoteName: "origin",
		Auth:       auth,
	})
	if err != nil && err != gogit.NoErrAlreadyUpToDate {
		return nil, fmt.Errorf("pull: %w", err)
	}

	newRef, err := g.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("read HEAD after pull: %w", err)
	}
	toSHA := newRef.Hash().String()

	return &SyncResult{
		FromSHA:    fromSHA,
		ToSHA:      toSHA,
		HadChanges: fromSHA != toSHA,
	}, nil
}

func (g *GitRepo) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := g.cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

// authProvider yields a go-git transport auth method.
type authProvider interface {
	AuthMethod() (transport.AuthMethod, error)
}

type noAuth struct{}

func (noAuth) AuthMethod() (transport.AuthMethod, error) { return nil, nil }

type tokenAuth struct {
	token string
}

func (a tokenAuth) AuthMethod() (transport.AuthMethod, error) {
	// Username is ignored by token-authenticated HTTPS remotes.
	return &githttp.BasicAuth{Username: "git", Password: a.token}, nil
}

type basicAuth struct {
	username string
	password string
}

func (a basicAuth) AuthMethod() (transport.AuthMethod, error) {
	return &githttp.BasicAuth{Username: a.username, Password: a.password}, nil
}

type sshAuth struct {
	keyPath string
}

func (a sshAuth) AuthMethod() (transport.AuthMethod, error) {
	if _, err := os.Stat(a.keyPath); err != nil {
		return nil, fmt.Errorf("access ssh key: %w", err)
	}
	auth, err := gitssh.NewPublicKeysFromFile("git", a.keyPath, "")
	if err != nil {
		return nil, fmt.Errorf("load ssh key: %w", err)
	}
	return auth, nil
}

func newAuthProvider(cfg *config.GitAuthConfig) (authProvider, error) {
	switch cfg.Method {
	case "", "none":
		return noAuth{}, nil
	case "token":
		if cfg.Token == "" {
			return nil, fmt.Errorf("token auth requires a token")
		}
		return tokenAuth{token: cfg.Token}, nil
	case "basic":
		if cfg.Username == "" || cfg.Password == "" {
			return nil, fmt.Errorf("basic auth requires username and password")
		}
		return basicAuth{username: cfg.Username, password: cfg.Password}, nil
	case "ssh":
		if cfg.SSHKeyPath == "" {
			return nil, fmt.Errorf("ssh auth requires a key path")
		}
		return sshAuth{keyPath: cfg.SSHKeyPath}, nil
	default:
		return nil, fmt.Errorf("unknown git auth method %q", cfg.Method)
	}
}
