package toggle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/example/symlink-toggle/internal/toggle/domain"
	"github.com/example/symlink-toggle/internal/toggle/linkfs"
)

// Service contains the core filesystem logic for toggling a symlink between
// two candidate targets.
type Service struct {
	fs  *linkfs.LinkFS
	log zerolog.Logger
}

// Candidates holds the two resolved candidate names, in detection order.
type Candidates struct {
	First  string
	Second string
}

// Other returns the candidate that is not current. A current value matching
// neither candidate is a fatal no-match error. With fewer than two resolved
// candidates no comparison can succeed.
func (c Candidates) Other(current string) (string, error) {
	if c.First != "" && c.Second != "" {
		switch current {
		case c.First:
			return c.Second, nil
		case c.Second:
			return c.First, nil
		}
	}
	return "", fmt.Errorf("%w: current target %q is neither %q nor %q",
		domain.ErrNoMatch, current, c.First, c.Second)
}

// NewService creates a new Service using the provided filesystem.
func NewService(fs afero.Fs, logger zerolog.Logger) (*Service, error) {
	if fs == nil {
		return nil, errors.New("filesystem cannot be nil")
	}
	return &Service{fs: linkfs.New(fs), log: logger}, nil
}

// ResolveCandidates produces the two candidate names, either taken directly
// from the configuration or auto-detected by scanning the possible names in
// order and keeping those that exist in the directory. A third existing name
// is fatal; fewer than two is left for the toggle comparison to reject.
func (s *Service) ResolveCandidates(cfg Config) (Candidates, error) {
	if !cfg.AutoDetect() {
		s.log.Debug().Str("source1", cfg.Source1).Str("source2", cfg.Source2).
			Msg("using explicit candidates")
		return Candidates{First: cfg.Source1, Second: cfg.Source2}, nil
	}

	var found []string
	for _, name := range cfg.Possible {
		exists, err := s.fs.Exists(cfg.CandidatePath(name))
		if err != nil {
			return Candidates{}, fmt.Errorf("check candidate %q: %w", name, err)
		}
		if !exists {
			s.log.Debug().Str("candidate", name).Msg("candidate not present, skipping")
			continue
		}
		if len(found) == 2 {
			return Candidates{}, fmt.Errorf("%w: %q is a third match", domain.ErrTooManySources, name)
		}
		s.log.Info().Str("candidate", name).Int("slot", len(found)+1).Msg("candidate detected")
		found = append(found, name)
	}

	cand := Candidates{}
	if len(found) > 0 {
		cand.First = found[0]
	}
	if len(found) > 1 {
		cand.Second = found[1]
	}
	return cand, nil
}

// CurrentTarget inspects the symlink and returns the basename of its raw
// stored target. The path must exist, be a symlink, and resolve to a
// non-empty file.
func (s *Service) CurrentTarget(cfg Config) (string, error) {
	link := cfg.LinkPath()

	isLink, err := s.fs.IsSymlink(link)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrLinkMissing, link)
		}
		return "", fmt.Errorf("inspect %s: %w", link, err)
	}
	if !isLink {
		return "", fmt.Errorf("%w: %s", domain.ErrNotSymlink, link)
	}

	raw, err := s.fs.Readlink(link)
	if err != nil {
		return "", fmt.Errorf("readlink %s: %w", link, err)
	}

	// Stat through the link to verify the resolved target is a non-empty file.
	info, err := s.fs.Stat(link)
	if err != nil {
		return "", fmt.Errorf("%w: %s points to %s", domain.ErrLinkTargetEmpty, link, raw)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("%w: %s points to zero-size %s", domain.ErrLinkTargetEmpty, link, raw)
	}

	current := filepath.Base(raw)
	s.log.Info().Str("link", link).Str("current", current).Msg("symlink inspected")
	return current, nil
}

// Apply repoints the symlink at the named candidate, replacing the existing
// link atomically.
func (s *Service) Apply(cfg Config, next string) error {
	target := cfg.CandidatePath(next)
	if err := s.fs.Replace(target, cfg.LinkPath()); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrApply, err)
	}
	s.log.Info().Str("link", cfg.LinkPath()).Str("target", target).Msg("symlink set")
	return nil
}

// Result describes a completed toggle.
type Result struct {
	From string
	To   string
}

// Toggle runs the full resolve, inspect, decide, apply sequence.
func (s *Service) Toggle(cfg Config) (Result, error) {
	cand, err := s.ResolveCandidates(cfg)
	if err != nil {
		return Result{}, err
	}
	current, err := s.CurrentTarget(cfg)
	if err != nil {
		return Result{}, err
	}
	next, err := cand.Other(current)
	if err != nil {
		return Result{}, err
	}
	if err := s.Apply(cfg, next); err != nil {
		return Result{}, err
	}
	return Result{From: current, To: next}, nil
}
