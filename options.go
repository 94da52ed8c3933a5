package plz

// ParseOptions controls parsing behavior.
type ParseOptions struct {
	// MaxDepth limits nesting of parenthesized expressions (0 means unlimited).
	// Useful when parsing untrusted input.
	MaxDepth int
}

// FormatOptions controls writer formatting.
type FormatOptions struct {
	// Compact drops the spaces around binary operators and "=".
	Compact bool
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// DisableUndeclaredCheck disables errors for reading or assigning names without a prior let.
	DisableUndeclaredCheck bool
	// DisableRedeclareCheck disables warnings for a second let of the same name.
	DisableRedeclareCheck bool
	// DisableUnusedCheck disables warnings for declared names that are never read.
	DisableUnusedCheck bool
	// DisableDivZeroCheck disables warnings for division by the literal 0.
	DisableDivZeroCheck bool
}

// normalize normalizes the ParseOptions.
func (o *ParseOptions) normalize() ParseOptions {
	if o == nil {
		return ParseOptions{}
	}

	out := *o
	if out.MaxDepth < 0 {
		out.MaxDepth = 0
	}

	return out
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{}
	}

	return *o
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{}
	}

	return *o
}
