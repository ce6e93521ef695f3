package google

import (
	"context"
	"encoding/base64"

	"github.com/speakdown/speakdown/pkg/provider"

	"github.com/google/uuid"
	texttospeech "google.golang.org/api/texttospeech/v1"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

// Synthesizer renders SSML through Google Cloud Text-to-Speech.
// Without a token, application-default credentials apply.
type Synthesizer struct {
	*Config
}

func NewSynthesizer(options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		language: "en-US",
		voice:    "en-US-Wavenet-F",
	}

	for _, option := range options {
		option(cfg)
	}

	return &Synthesizer{
		Config: cfg,
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, ssml string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	service, err := texttospeech.NewService(ctx, s.options()...)

	if err != nil {
		return nil, err
	}

	language := s.language

	if options.Language != "" {
		language = options.Language
	}

	voice := s.voice

	if options.Voice != "" {
		voice = options.Voice
	}

	format := s.format

	if options.Format != "" {
		format = options.Format
	}

	encoding, contentType := convertFormat(format)

	result, err := service.Text.Synthesize(&texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{
			Ssml: ssml,
		},

		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: language,
			Name:         voice,
		},

		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding: encoding,
		},
	}).Context(ctx).Do()

	if err != nil {
		return nil, err
	}

	content, err := base64.StdEncoding.DecodeString(result.AudioContent)

	if err != nil {
		return nil, err
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Voice: voice,

		Content:     content,
		ContentType: contentType,
	}, nil
}

func convertFormat(format string) (string, string) {
	switch format {
	case "mp3":
		return "MP3", "audio/mpeg"

	case "wav", "linear16":
		return "LINEAR16", "audio/wav"

	default:
		return "OGG_OPUS", "audio/ogg"
	}
}
