// Package config implements the plain-text configuration grammar of
// spec.md §6: whitespace-insensitive "key = value" pairs, "#" line
// comments, and "structParams = { ... }" / "attrParams = { ... }" blocks
// listing term expressions consumed by package model's registry. No
// off-the-shelf format (YAML/TOML/INI) matches this exact shape, so this
// package is a small hand-rolled lexer/parser rather than a third-party
// dependency — see DESIGN.md.
package config
