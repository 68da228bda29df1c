package main

import "embed"

// configFS holds the default settings and enemy databases
//
//go:embed configs
var configFS embed.FS
