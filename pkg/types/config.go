package types

// RewriteConfig holds settings for the rewrite stage. Values come from the
// config file or environment via viper; command-line flags override them.
type RewriteConfig struct {
	// Output is an explicit output path. When empty, the output path is
	// derived from the input path using Suffix.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Suffix is appended to the input's base name when deriving the
	// output path (default "-bookmarked").
	Suffix string `json:"suffix" yaml:"suffix"`

	// TOCFile is an optional YAML table-of-contents document to use
	// instead of the embedded table.
	TOCFile string `json:"toc_file,omitempty" yaml:"toc_file,omitempty"`
}

// DefaultSuffix is the output-name suffix used when none is configured.
const DefaultSuffix = "-bookmarked"
