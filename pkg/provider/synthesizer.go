package provider

import (
	"context"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, ssml string, options *SynthesizeOptions) (*Synthesis, error)
}

type SynthesizeOptions struct {
	Language string
	Voice    string

	Format string
}

type Synthesis struct {
	ID    string
	Voice string

	Content     []byte
	ContentType string
}
