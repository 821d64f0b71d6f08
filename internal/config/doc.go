// Package config manages user-level settings stored at ~/.enginepatch/config.yaml:
// which game plugin to use, where the game's config directory lives, where the
// settings snapshot is kept, and how logging behaves. Every key can also be
// supplied through an ENGINEPATCH_* environment variable.
package config
