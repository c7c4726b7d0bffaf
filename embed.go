package main

import _ "embed"

// defaultLayout is the built-in HUD document, used when the configuration
// does not point at a layout file on disk.
//
//go:embed assets/ui/hud.yaml
var defaultLayout []byte
