package assets

// DefaultStyleName is the name of the built-in style sheet.
const DefaultStyleName = "default"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a style sheet by name using the default embedded loader.
// The name should not include the .xml extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// StyleNames returns the names of the embedded style sheets, sorted.
func StyleNames() []string {
	return defaultLoader.StyleNames()
}
