package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/speakdown/speakdown/config"
	"github.com/speakdown/speakdown/pkg/ssml"
)

func main() {
	audioFlag := flag.Bool("audio", false, "synthesize an audio file next to the SSML output")
	configFlag := flag.String("config", "", "synthesizer config file")

	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: speakdown [flags] <input.md>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	input := flag.Arg(0)

	data, err := os.ReadFile(input)

	if err != nil {
		fatal(err)
	}

	translator := ssml.NewTranslator()

	document, err := translator.Translate(string(data))

	if err != nil {
		fatal(err)
	}

	ssmlPath := replaceExt(input, ".ssml")

	if err := os.WriteFile(ssmlPath, []byte(document), 0600); err != nil {
		fatal(err)
	}

	fmt.Printf("SSML content written to file %q\n", ssmlPath)

	if !*audioFlag {
		return
	}

	ctx := context.Background()

	cfg, err := loadConfig(*configFlag)

	if err != nil {
		fatal(err)
	}

	synthesizer, err := cfg.Synthesizer("")

	if err != nil {
		fatal(err)
	}

	synthesis, err := synthesizer.Synthesize(ctx, document, nil)

	if err != nil {
		// The SSML file is already on disk; skip the audio and exit clean.
		slog.Error("error generating audio", "error", err)
		return
	}

	audioPath := replaceExt(input, ".ogg")

	if err := os.WriteFile(audioPath, synthesis.Content, 0600); err != nil {
		fatal(err)
	}

	fmt.Printf("Audio content written to file %q\n", audioPath)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}

	return config.Parse(path)
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
