package driven

import "github.com/custodia-labs/rocketdoc-cli/internal/convert"

// ConfigStore supplies persisted conversion defaults. Flag values
// override whatever the store returns; the store never sees flags.
type ConfigStore interface {
	// Options returns the stored conversion options, falling back to
	// convert.DefaultOptions for unset fields.
	Options() convert.Options

	// SetOptions persists conversion options.
	SetOptions(opts convert.Options) error
}
