package service

// InputCollector holds the editable location string and hands it to
// onSubmit when the user asks for a search
type InputCollector struct {
	value    string
	onSubmit func(string)
}

// NewInputCollector creates a collector pre-filled with initial
func NewInputCollector(initial string, onSubmit func(string)) *InputCollector {
	return &InputCollector{value: initial, onSubmit: onSubmit}
}

// Set replaces the current value
func (c *InputCollector) Set(v string) { c.value = v }

// Value returns the current value
func (c *InputCollector) Value() string { return c.value }

// Submit invokes the callback once with the current value.
// An empty value is a no-op and reports false.
func (c *InputCollector) Submit() bool {
	if c.value == "" {
		return false
	}
	if c.onSubmit != nil {
		c.onSubmit(c.value)
	}
	return true
}
