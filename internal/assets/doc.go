// Package assets provides WordprocessingML style sheets for DOCX generation.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default styles)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in style sheets (default, technical)
// embedded at compile time.
//
// FilesystemLoader allows users to provide custom style sheets from a
// directory, with path traversal protection and symlink resolution.
//
// AssetResolver is the primary loader used by the converter. It tries the
// custom FilesystemLoader first, falling back to EmbeddedLoader if the asset
// is not found. This enables overriding specific styles while keeping defaults.
//
// # Directory Structure
//
//	{basePath}/
//	└── styles/
//	    └── {name}.xml           # word/styles.xml content (e.g., technical.xml)
//
// A style sheet must define the paragraph styles Normal, Title, Heading1-3,
// ListBullet, ListNumber and Code. Loaders return raw content; validation
// happens when the converter builds the package.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
