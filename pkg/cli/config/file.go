package config

import (
	"os"
	"strconv"

	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// File is the YAML configuration file. Credentials are accepted only from flags or environment variables.
type File struct {
	GitHub struct {
		Organization string `yaml:"organization"`
		APIURL       string `yaml:"api_url"`
	} `yaml:"github"`

	Policy struct {
		DefaultRetentionDays *int     `yaml:"default_retention_days"`
		ExpirationNoticeDays *int     `yaml:"expiration_notice_days"`
		IgnoreNames          []string `yaml:"ignore_names"`
		IgnorePattern        string   `yaml:"ignore_pattern"`
	} `yaml:"policy"`

	Notifier struct {
		Type          string `yaml:"type"`
		NotifyFailure string `yaml:"notify_failure"`
	} `yaml:"notifier"`
}

func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to read config file",
			goerr.V("path", path), goerr.V("error", err.Error()))
	}

	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to parse config file",
			goerr.V("path", path), goerr.V("error", err.Error()))
	}

	return &file, nil
}

// Apply sets values from the file to flags that are not given by command line or environment variable.
func (x *File) Apply(c *cli.Command) error {
	values := []flagValue{
		{"organization", x.GitHub.Organization},
		{"github-api-url", x.GitHub.APIURL},
		{"ignore-pattern", x.Policy.IgnorePattern},
		{"notifier", x.Notifier.Type},
		{"notify-failure", x.Notifier.NotifyFailure},
	}
	if x.Policy.DefaultRetentionDays != nil {
		values = append(values, flagValue{"default-retention-days", strconv.Itoa(*x.Policy.DefaultRetentionDays)})
	}
	if x.Policy.ExpirationNoticeDays != nil {
		values = append(values, flagValue{"expiration-notice-days", strconv.Itoa(*x.Policy.ExpirationNoticeDays)})
	}

	for _, v := range values {
		if err := setIfUnset(c, v.name, v.value); err != nil {
			return err
		}
	}

	if !c.IsSet("ignore-name") {
		for _, name := range x.Policy.IgnoreNames {
			if err := c.Set("ignore-name", name); err != nil {
				return goerr.Wrap(types.ErrInvalidOption, "failed to apply config file",
					goerr.V("flag", "ignore-name"), goerr.V("error", err.Error()))
			}
		}
	}

	return nil
}

type flagValue struct {
	name  string
	value string
}

func setIfUnset(c *cli.Command, name, value string) error {
	if value == "" || c.IsSet(name) {
		return nil
	}
	if err := c.Set(name, value); err != nil {
		return goerr.Wrap(types.ErrInvalidOption, "failed to apply config file",
			goerr.V("flag", name), goerr.V("value", value), goerr.V("error", err.Error()))
	}
	return nil
}
