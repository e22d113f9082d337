//go:build !tilekitdebug

package tilekit

// DefaultMode is the build's asset mode. Builds without the tilekitdebug tag
// load sprites from an embedded filesystem.
const DefaultMode = ModeRelease
