package formatter

// DefaultHighlightColor marks base partitions and base values
const DefaultHighlightColor = "#d3e7c9"

// DefaultOraclePlaceholder fills oracle cells with no stored text
const DefaultOraclePlaceholder = "expected value/behavior"

// Options tune the generated markup
type Options struct {
	HighlightColor    string
	OraclePlaceholder string
}

// DefaultOptions returns the built-in options
func DefaultOptions() Options {
	return Options{
		HighlightColor:    DefaultHighlightColor,
		OraclePlaceholder: DefaultOraclePlaceholder,
	}
}

func (o Options) withDefaults() Options {
	if o.HighlightColor == "" {
		o.HighlightColor = DefaultHighlightColor
	}
	if o.OraclePlaceholder == "" {
		o.OraclePlaceholder = DefaultOraclePlaceholder
	}
	return o
}
