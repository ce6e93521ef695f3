package config

import (
	"bytes"
	"os"

	"github.com/speakdown/speakdown/pkg/provider"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	synthesizer map[string]provider.Synthesizer
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{}

	if err := c.registerSynthesizers(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Synthesizers yaml.Node `yaml:"synthesizers"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
