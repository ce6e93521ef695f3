package openai

import (
	"context"
	"io"

	"github.com/speakdown/speakdown/pkg/provider"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

type Synthesizer struct {
	*Config
	speech openai.AudioSpeechService
}

func NewSynthesizer(url, model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url:   url,
		model: model,

		voice: "alloy",
	}

	for _, option := range options {
		option(cfg)
	}

	return &Synthesizer{
		Config: cfg,
		speech: openai.NewAudioSpeechService(cfg.Options()...),
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, ssml string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	voice := s.voice

	if options.Voice != "" {
		voice = options.Voice
	}

	format := s.format

	if options.Format != "" {
		format = options.Format
	}

	responseFormat, contentType := convertFormat(format)

	result, err := s.speech.New(ctx, openai.AudioSpeechNewParams{
		Model: s.model,
		Input: ssml,

		Voice: openai.AudioSpeechNewParamsVoice(voice),

		ResponseFormat: responseFormat,
	})

	if err != nil {
		return nil, convertError(err)
	}

	data, err := io.ReadAll(result.Body)

	if err != nil {
		return nil, err
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Voice: voice,

		Content:     data,
		ContentType: contentType,
	}, nil
}

func convertFormat(format string) (openai.AudioSpeechNewParamsResponseFormat, string) {
	switch format {
	case "mp3":
		return openai.AudioSpeechNewParamsResponseFormatMP3, "audio/mpeg"

	case "wav":
		return openai.AudioSpeechNewParamsResponseFormatWAV, "audio/wav"

	default:
		return openai.AudioSpeechNewParamsResponseFormatOpus, "audio/ogg"
	}
}
