package converter

import (
	"regexp"

	"github.com/riverfjs/slackify-go/internal/types"
)

// Logger is the part of a structured logger the converters report to.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
}

// Options control both block converters. Zero values fall back to defaults.
type Options struct {
	TextLimit   int
	HeaderLimit int
	Bullet      string
	Sentence    *regexp.Regexp
	Logger      Logger
}

func (o Options) withDefaults() Options {
	if o.TextLimit <= 0 {
		o.TextLimit = types.DefaultTextLimit
	}
	if o.HeaderLimit <= 0 {
		o.HeaderLimit = types.DefaultHeaderLimit
	}
	if o.Bullet == "" {
		o.Bullet = types.DefaultSymbol().Bullet
	}
	if o.Sentence == nil {
		o.Sentence = defaultSentenceRe
	}
	return o
}

func (o Options) debug(msg string, keyvals ...interface{}) {
	if o.Logger != nil {
		o.Logger.Debug(msg, keyvals...)
	}
}
