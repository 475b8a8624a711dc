// Package assets provides the stylesheets used by anchored pages.
//
// Styles are looked up by name:
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - styles compiled in with go:embed
//	    ├── FilesystemLoader  - {basePath}/styles/{name}.css on disk
//	    └── Resolver          - filesystem first, embedded fallback
//
// The built-in style is DefaultStyleName ("autoanchors"). A custom asset
// directory may override it by shipping styles/autoanchors.css.
//
// Style names are validated and filesystem paths are checked to stay within
// the base path, including after symlink resolution.
package assets
