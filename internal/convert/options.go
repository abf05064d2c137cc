package convert

// Options is the explicit configuration object passed into every loader
// and writer call. There are no implicit global defaults; callers that
// want the stock behaviour start from DefaultOptions.
type Options struct {
	// Precision is the number of decimal places writers use for
	// free-precision fields (native format, inspection output).
	// Engine-file thrust tables keep their format-mandated precision
	// regardless.
	Precision int

	// CanvasWidth and CanvasHeight are the SVG drawing size in pixels.
	// The renderer derives its scale factor from these and the rocket's
	// dimensions, so identical input yields identical output.
	CanvasWidth  int
	CanvasHeight int

	// CanvasMargin is the padding around the drawing in pixels.
	CanvasMargin int
}

// DefaultOptions returns the stock conversion options.
func DefaultOptions() Options {
	return Options{
		Precision:    4,
		CanvasWidth:  1000,
		CanvasHeight: 400,
		CanvasMargin: 20,
	}
}
