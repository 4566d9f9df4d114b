package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/rileyhilliard/uptop/internal/errors"
)

const (
	minInterval = time.Second
	minTimeout  = 100 * time.Millisecond
)

// Validate checks that cfg can actually drive a monitoring run.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return errors.New(errors.ErrTarget,
			"no targets to monitor",
			"Pass one or more URLs as arguments, e.g. 'uptop example.com', or set UPTOP_TARGETS")
	}

	for _, target := range c.Targets {
		if err := validateTarget(target); err != nil {
			return err
		}
	}

	if c.Interval < minInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("interval %s is too short", c.Interval),
			fmt.Sprintf("Use an interval of at least %s", minInterval))
	}

	if c.Timeout < minTimeout {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("timeout %s is too short", c.Timeout),
			fmt.Sprintf("Use a timeout of at least %s", minTimeout))
	}

	return nil
}

func validateTarget(target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTarget,
			fmt.Sprintf("invalid target %q", target),
			"Targets must be URLs like https://example.com")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New(errors.ErrTarget,
			fmt.Sprintf("unsupported scheme %q in target %q", u.Scheme, target),
			"Only http and https targets are supported")
	}

	if u.Host == "" {
		return errors.New(errors.ErrTarget,
			fmt.Sprintf("target %q has no host", target),
			"Targets must be URLs like https://example.com")
	}

	return nil
}
