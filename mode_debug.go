//go:build tilekitdebug

package tilekit

// DefaultMode is the build's asset mode. Builds with the tilekitdebug tag
// load sprites from the asset directory and enable hot-reload.
const DefaultMode = ModeDebug
