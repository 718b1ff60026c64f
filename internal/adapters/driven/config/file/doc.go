// Package file implements the ConfigStore port backed by a TOML file.
// Pipeline options (word minimum, token limit, chunk overlap, tokenizer
// selection) live at the top level; the [domains] table maps each
// domain name to its classification keywords.
package file
