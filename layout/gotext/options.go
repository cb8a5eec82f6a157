package gotext

// Option configures a Layout during creation.
type Option func(*options)

type options struct {
	maxWidth    float64
	lineSpacing float64
	language    string
}

func defaultOptions() options {
	return options{
		maxWidth:    0, // no wrapping
		lineSpacing: 1.0,
		language:    "en",
	}
}

// WithMaxWidth sets the maximum line width in pixels. Lines wider than this
// wrap onto the next visual line. Zero (the default) disables wrapping.
func WithMaxWidth(w float64) Option {
	return func(o *options) {
		o.maxWidth = w
	}
}

// WithLineSpacing sets a multiplier for line height. 1.0 (the default) uses
// the font's natural line height.
func WithLineSpacing(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.lineSpacing = s
		}
	}
}

// WithLanguage sets the BCP 47 language tag passed to the shaper. Default
// is "en".
func WithLanguage(lang string) Option {
	return func(o *options) {
		if lang != "" {
			o.language = lang
		}
	}
}
