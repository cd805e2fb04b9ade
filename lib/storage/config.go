package storage

import (
	"net/url"

	"boscoin.io/council/lib/errors"
)

// Config is parsed from a storage uri, `file:///path/to/db` or `memory://`.
type Config struct {
	Scheme string
	Path   string
}

func NewConfigFromString(s string) (*Config, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, errors.StorageBadConfig.Clone().SetData("error", err.Error())
	}

	switch u.Scheme {
	case "memory":
		return &Config{Scheme: u.Scheme}, nil
	case "file":
		if len(u.Path) < 1 {
			return nil, errors.StorageBadConfig.Clone().SetData("error", "empty path")
		}
		return &Config{Scheme: u.Scheme, Path: u.Path}, nil
	default:
		return nil, errors.StorageBadConfig.Clone().SetData("scheme", u.Scheme)
	}
}

func (c *Config) String() string {
	u := url.URL{Scheme: c.Scheme, Path: c.Path}
	if c.Scheme == "memory" {
		return "memory://"
	}
	return u.String()
}
