package openai

import (
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3/option"
)

type Config struct {
	url string

	token string
	model string

	voice  string
	format string

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

func (c *Config) Options() []option.RequestOption {
	if c.url == "" {
		c.url = "https://api.openai.com/v1/"
	}

	if c.client == nil {
		c.client = http.DefaultClient
	}

	c.url = strings.TrimRight(c.url, "/") + "/"

	options := []option.RequestOption{
		option.WithBaseURL(c.url),
		option.WithHTTPClient(c.client),
	}

	if c.token != "" {
		options = append(options, option.WithAPIKey(c.token))
	}

	return options
}
