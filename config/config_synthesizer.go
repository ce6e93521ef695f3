package config

import (
	"errors"
	"strings"

	"github.com/speakdown/speakdown/pkg/limiter"
	"github.com/speakdown/speakdown/pkg/provider"
	"github.com/speakdown/speakdown/pkg/provider/google"
	"github.com/speakdown/speakdown/pkg/provider/openai"
)

// Default returns the built-in configuration: Google Cloud
// Text-to-Speech with the en-US-Wavenet-F voice and Ogg Opus output.
func Default() (*Config, error) {
	c := &Config{}

	synthesizer, err := google.NewSynthesizer()

	if err != nil {
		return nil, err
	}

	c.RegisterSynthesizer("google", synthesizer)

	return c, nil
}

func (cfg *Config) RegisterSynthesizer(id string, p provider.Synthesizer) {
	if cfg.synthesizer == nil {
		cfg.synthesizer = make(map[string]provider.Synthesizer)
	}

	if _, ok := cfg.synthesizer[""]; !ok {
		cfg.synthesizer[""] = p
	}

	cfg.synthesizer[id] = p
}

func (cfg *Config) Synthesizer(id string) (provider.Synthesizer, error) {
	if cfg.synthesizer != nil {
		if s, ok := cfg.synthesizer[id]; ok {
			return s, nil
		}
	}

	return nil, errors.New("synthesizer not found: " + id)
}

type synthesizerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Model string `yaml:"model"`

	Language string `yaml:"language"`
	Voice    string `yaml:"voice"`
	Format   string `yaml:"format"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerSynthesizers(f *configFile) error {
	if f.Synthesizers.IsZero() {
		return nil
	}

	var configs map[string]synthesizerConfig

	if err := f.Synthesizers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Synthesizers.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		synthesizer, err := createSynthesizer(config)

		if err != nil {
			return err
		}

		if l := createLimiter(config.Limit); l != nil {
			synthesizer = limiter.NewSynthesizer(l, synthesizer)
		}

		cfg.RegisterSynthesizer(id, synthesizer)
	}

	return nil
}

func createSynthesizer(cfg synthesizerConfig) (provider.Synthesizer, error) {
	switch strings.ToLower(cfg.Type) {
	case "google":
		return googleSynthesizer(cfg)

	case "openai":
		return openaiSynthesizer(cfg)

	default:
		return nil, errors.New("invalid synthesizer type: " + cfg.Type)
	}
}

func googleSynthesizer(cfg synthesizerConfig) (provider.Synthesizer, error) {
	var options []google.Option

	if cfg.URL != "" {
		options = append(options, google.WithEndpoint(cfg.URL))
	}

	if cfg.Token != "" {
		options = append(options, google.WithToken(cfg.Token))
	}

	if cfg.Language != "" {
		options = append(options, google.WithLanguage(cfg.Language))
	}

	if cfg.Voice != "" {
		options = append(options, google.WithVoice(cfg.Voice))
	}

	if cfg.Format != "" {
		options = append(options, google.WithFormat(cfg.Format))
	}

	return google.NewSynthesizer(options...)
}

func openaiSynthesizer(cfg synthesizerConfig) (provider.Synthesizer, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	if cfg.Voice != "" {
		options = append(options, openai.WithVoice(cfg.Voice))
	}

	if cfg.Format != "" {
		options = append(options, openai.WithFormat(cfg.Format))
	}

	model := cfg.Model

	if model == "" {
		model = "tts-1"
	}

	return openai.NewSynthesizer(cfg.URL, model, options...)
}
