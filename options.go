package slackify

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/riverfjs/slackify-go/internal/converter"
	"github.com/riverfjs/slackify-go/internal/types"
)

// ConvertOptions holds options for markdown conversion.
type ConvertOptions struct {
	Dialect  Dialect
	BlockIDs bool
	Config   *RenderConfig
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithDialect selects the output format used by Slackify.
func WithDialect(d Dialect) Option {
	return func(opts *ConvertOptions) {
		opts.Dialect = d
	}
}

// WithBlockIDs sets whether every top-level block gets a random block_id.
func WithBlockIDs(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.BlockIDs = enable
	}
}

// WithConfig sets a custom RenderConfig. Options applied after it override
// single fields on a private copy.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		if config != nil {
			opts.Config = config.Clone()
		}
	}
}

// WithTextLimit sets the per-block character limit for section text.
func WithTextLimit(limit int) Option {
	return func(opts *ConvertOptions) {
		opts.Config.TextLimit = limit
	}
}

// WithHeaderLimit sets the character limit for header text.
func WithHeaderLimit(limit int) Option {
	return func(opts *ConvertOptions) {
		opts.Config.HeaderLimit = limit
	}
}

// WithSentencePattern sets the regular expression that ends a sentence when
// long paragraphs are chunked.
func WithSentencePattern(pattern string) Option {
	return func(opts *ConvertOptions) {
		opts.Config.SentencePattern = pattern
	}
}

// WithBullet sets the glyph that replaces list markers in section text.
func WithBullet(bullet string) Option {
	return func(opts *ConvertOptions) {
		opts.Config.MarkdownSymbol = &Symbol{Bullet: bullet}
	}
}

// WithMaxBlocks sets how many blocks Slackify puts into one message.
func WithMaxBlocks(n int) Option {
	return func(opts *ConvertOptions) {
		opts.Config.MaxBlocks = n
	}
}

// WithMaxMessageLength sets the character limit for message text.
func WithMaxMessageLength(n int) Option {
	return func(opts *ConvertOptions) {
		opts.Config.MaxMessageLength = n
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Dialect: DialectSections,
		Config:  DefaultConfig().Clone(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

var sentencePatterns sync.Map // pattern -> *regexp.Regexp

func compileSentence(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		pattern = types.DefaultSentencePattern
	}
	if re, ok := sentencePatterns.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid sentence pattern %q: %w", pattern, err)
	}
	sentencePatterns.Store(pattern, re)
	return re, nil
}

// converterOptions translates the render config for the internal converters.
// An invalid sentence pattern falls back to the default one.
func (o *ConvertOptions) converterOptions() converter.Options {
	cfg := o.Config
	re, err := compileSentence(cfg.SentencePattern)
	if err != nil {
		Logger.Warn("falling back to default sentence pattern", "err", err)
		re = nil
	}
	bullet := ""
	if cfg.MarkdownSymbol != nil {
		bullet = cfg.MarkdownSymbol.Bullet
	}
	return converter.Options{
		TextLimit:   cfg.TextLimit,
		HeaderLimit: cfg.HeaderLimit,
		Bullet:      bullet,
		Sentence:    re,
		Logger:      Logger,
	}
}
