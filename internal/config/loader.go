package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rileyhilliard/uptop/internal/errors"
)

// Load resolves the runtime configuration. Precedence, lowest to highest:
// built-in defaults, UPTOP_* environment variables, command-line flags.
// Positional args become the target list; when absent, UPTOP_TARGETS is
// consulted (comma-separated).
func Load(flags *pflag.FlagSet, args []string) (*Config, error) {
	v := viper.New()

	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("strict-http", false)
	v.SetDefault("plain", false)
	v.SetDefault("no-color", false)

	v.SetEnvPrefix("UPTOP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("targets")

	if flags != nil {
		for _, key := range []string{"interval", "timeout", "strict-http", "plain", "no-color"} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrap(err, "failed to bind flag --"+key)
				}
			}
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse configuration")
	}

	cfg.Targets = resolveTargets(args, v.GetString("targets"))

	return cfg, nil
}

// resolveTargets prefers positional args over the environment list.
func resolveTargets(args []string, env string) []string {
	raw := args
	if len(raw) == 0 && env != "" {
		raw = strings.Split(env, ",")
	}

	targets := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		targets = append(targets, NormalizeTarget(t))
	}
	return targets
}

// NormalizeTarget prefixes bare hosts with https:// so "example.com" works
// the same as a full URL. Explicit schemes are left untouched.
func NormalizeTarget(target string) string {
	if strings.Contains(target, "://") {
		return target
	}
	return "https://" + target
}
