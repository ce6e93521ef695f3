package google

import (
	"net/http"

	"google.golang.org/api/option"
)

type Config struct {
	url string

	token string

	language string
	voice    string
	format   string

	client *http.Client
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

func WithEndpoint(url string) Option {
	return func(c *Config) {
		c.url = url
	}
}

func WithLanguage(language string) Option {
	return func(c *Config) {
		c.language = language
	}
}

func WithVoice(voice string) Option {
	return func(c *Config) {
		c.voice = voice
	}
}

func WithFormat(format string) Option {
	return func(c *Config) {
		c.format = format
	}
}

func (c *Config) options() []option.ClientOption {
	options := []option.ClientOption{}

	if c.url != "" {
		options = append(options, option.WithEndpoint(c.url))
	}

	// A caller-supplied client is used as-is, bypassing credential lookup.
	if c.client != nil {
		options = append(options, option.WithHTTPClient(c.client))
		return options
	}

	if c.token != "" {
		options = append(options, option.WithAPIKey(c.token))
	}

	return options
}
