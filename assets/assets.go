// Package assets embeds static data shipped with the binary.
package assets

import "embed"

// PersonasPath is the path of the persona catalog inside PersonasFS.
const PersonasPath = "personas.yaml"

//go:embed personas.yaml
var PersonasFS embed.FS

// StaticRoot is the directory inside StaticFS served under /static/.
const StaticRoot = "static"

// StaticFS holds the fallback stylesheet used when no static directory is deployed.
//
//go:embed static
var StaticFS embed.FS
