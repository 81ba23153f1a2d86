package forticare

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// DefaultConfigFile is the config file looked up in the working directory
// when no --config flag is given.
const DefaultConfigFile = ".forticare"

// Config holds everything read from the INI file. Credentials live in
// memory for the process lifetime and are never written back out.
type Config struct {
	// FortiCareURL is the registration API base, e.g.
	// https://support.fortinet.com/ES/api/registration/v3/
	FortiCareURL string
	ClientID     string
	APIID        string
	APIPassword  string
	// CustomerAuthURL is the OAuth base, e.g.
	// https://customerapiauth.fortinet.com/api/v1/oauth/
	CustomerAuthURL string
}

// ConfigError reports a required key missing from the config file. The
// caller decides whether it is fatal; the loader never terminates the
// process itself.
type ConfigError struct {
	Section string
	Key     string
	File    string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing key %q in section [%s] of configuration file %q", e.Key, e.Section, e.File)
}

// LoadConfig reads the INI file at path. Every key is required; the first
// missing one is returned as a *ConfigError.
func LoadConfig(path string) (*Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration file %q: %w", path, err)
	}

	cfg := &Config{}
	required := []struct {
		section string
		key     string
		dst     *string
	}{
		{"forticare", "url", &cfg.FortiCareURL},
		{"forticare", "client_id", &cfg.ClientID},
		{"forticare", "api_id", &cfg.APIID},
		{"forticare", "api_password", &cfg.APIPassword},
		{"customerauth", "url", &cfg.CustomerAuthURL},
	}
	for _, r := range required {
		section := f.Section(r.section)
		if !section.HasKey(r.key) {
			return nil, &ConfigError{Section: r.section, Key: r.key, File: path}
		}
		*r.dst = section.Key(r.key).String()
	}

	return cfg, nil
}
