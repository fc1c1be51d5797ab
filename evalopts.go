package calc

// DefaultMaxLen is the maximum number of runes in an expression when no MaxLen
// option is given.
const DefaultMaxLen = 2048

// EvalOption is an option for evaluation.
type EvalOption interface {
	evalOption(evalctx) evalctx
}

type maxlenopt int

// evalctx holds the settings for one evaluation. It is also an EvalOption.
type evalctx struct {
	// maxlen is the maximum input length in runes. Zero or less means no
	// limit.
	maxlen int
	// preset indicates that the context was created by EvalPreset.
	preset bool
}

// MaxLen sets the maximum number of runes an expression may contain. The limit
// is checked before any parsing. A limit of zero or less disables the check.
func MaxLen(n int) EvalOption {
	return maxlenopt(n)
}

func (o maxlenopt) evalOption(e evalctx) evalctx {
	e.maxlen = int(o)
	return e
}

// EvalPreset combines options into one, for callers that evaluate many
// expressions with the same non-default settings. A preset is immutable and
// safe to share between goroutines. A preset panics when it is applied after
// an option that changed any default, including another preset, but it is
// fine to apply other options after a preset.
func EvalPreset(opts ...EvalOption) EvalOption {
	e := evalctx{maxlen: DefaultMaxLen}
	for _, opt := range opts {
		e = opt.evalOption(e)
	}
	e.preset = true
	return &e
}

func (o *evalctx) evalOption(e evalctx) evalctx {
	if e.preset || e.maxlen != DefaultMaxLen {
		panic("calc: preset applied to non-default eval config")
	}
	return *o
}
