package toggle

import (
	"errors"
	"testing"

	"github.com/example/symlink-toggle/internal/toggle/domain"
)

func mapLookup(env map[string]string) EnvLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestMergeConfigEnvFallback(t *testing.T) {
	env := map[string]string{
		"CONFIG_PATH":     "/srv/app",
		"TARGET":          "app_current",
		"POSSIBLE_VALUES": "app_v1 app_v2",
	}
	cfg := MergeConfig(Config{}, mapLookup(env))
	if cfg.Directory != "/srv/app" {
		t.Fatalf("expected directory from env, got %q", cfg.Directory)
	}
	if cfg.Target != "app_current" {
		t.Fatalf("expected target from env, got %q", cfg.Target)
	}
	if len(cfg.Possible) != 2 || cfg.Possible[0] != "app_v1" || cfg.Possible[1] != "app_v2" {
		t.Fatalf("expected possible values split on spaces, got %v", cfg.Possible)
	}
}

func TestMergeConfigFlagsWin(t *testing.T) {
	env := map[string]string{
		"CONFIG_PATH": "/from/env",
		"TARGET":      "env_target",
		"SOURCE1":     "env_a",
		"SOURCE2":     "env_b",
	}
	flags := Config{Directory: "/from/flag", Target: "flag_target", Source1: "a", Source2: "b"}
	cfg := MergeConfig(flags, mapLookup(env))
	if cfg.Directory != "/from/flag" {
		t.Fatalf("expected flag directory to win, got %q", cfg.Directory)
	}
	if cfg.Target != "flag_target" || cfg.Source1 != "a" || cfg.Source2 != "b" {
		t.Fatalf("expected flag values to win, got %+v", cfg)
	}
}

func TestMergeConfigSourcesFromEnv(t *testing.T) {
	env := map[string]string{"SOURCE1": "left", "SOURCE2": "right"}
	cfg := MergeConfig(Config{Directory: "/d", Target: "t"}, mapLookup(env))
	if cfg.Source1 != "left" || cfg.Source2 != "right" {
		t.Fatalf("expected sources from env, got %+v", cfg)
	}
}

func TestMergeConfigStripsTrailingSlash(t *testing.T) {
	cases := map[string]string{
		"/srv/app/": "/srv/app",
		"/srv/app":  "/srv/app",
		"/":         "/",
		"":          "",
	}
	for in, want := range cases {
		cfg := MergeConfig(Config{Directory: in}, nil)
		if cfg.Directory != want {
			t.Fatalf("directory %q: expected %q, got %q", in, want, cfg.Directory)
		}
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"missing directory", Config{Target: "t", Source1: "a", Source2: "b"}, domain.ErrDirectoryUnset},
		{"missing target", Config{Directory: "/d", Source1: "a", Source2: "b"}, domain.ErrTargetUnset},
		{"mixed modes", Config{Directory: "/d", Target: "t", Source1: "a", Possible: []string{"x"}}, domain.ErrModeConflict},
		{"no candidates", Config{Directory: "/d", Target: "t"}, domain.ErrModeIncomplete},
		{"one explicit source", Config{Directory: "/d", Target: "t", Source1: "a"}, domain.ErrModeIncomplete},
		{"explicit ok", Config{Directory: "/d", Target: "t", Source1: "a", Source2: "b"}, nil},
		{"auto ok", Config{Directory: "/d", Target: "t", Possible: []string{"x", "y"}}, nil},
	}
	for _, tc := range cases {
		err := tc.cfg.Validate()
		if tc.want == nil {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestPaths(t *testing.T) {
	cfg := Config{Directory: "/srv/app", Target: "app_current"}
	if cfg.LinkPath() != "/srv/app/app_current" {
		t.Fatalf("unexpected link path %q", cfg.LinkPath())
	}
	if cfg.CandidatePath("app_v1") != "/srv/app/app_v1" {
		t.Fatalf("unexpected candidate path %q", cfg.CandidatePath("app_v1"))
	}
}
