// Package tilekit is the sprite and tile-map drawing layer of a small 2D tile
// game, built on [Ebitengine].
//
// A [SpriteTable] declares every sprite by name and anchor offset; the
// sprite's [SpriteID] is its position in the table. A [Registry] owns one
// image per declared sprite, loaded from an [io/fs.FS]: the asset directory
// in debug builds, an embedded filesystem in release builds (see [Mode] and
// [OpenAssets]).
//
//	cfg, err := tilekit.LoadConfig("tilekit.yaml")
//	reg, err := tilekit.NewRegistryFromConfig(cfg, embeddedAssets)
//	if err := reg.Load(); err != nil {
//		log.Print(err) // failed sprites draw nothing
//	}
//
// # Drawing
//
// Every draw call takes the target image, a [Camera] (scale plus pixel
// offset) and optional [DrawOptions]. Options apply to that call only:
//
//	reg.DrawSpriteAtTile(screen, tilekit.SpriteHero, 3, 4, cam, nil)
//	reg.DrawSpriteAtTileWithAlpha(screen, tilekit.SpriteShadow, 3, 4, cam, 0.5)
//	reg.DrawDialog(screen, 20, 300, 600, 160, 2, nil)
//
// [MapRenderer] draws a [github.com/phanxgames/tilekit/tilemap.Map] through a
// palette of sprites, and [CameraRig] animates the camera with tweens (via
// [gween]).
//
// # Hot reload
//
// In debug builds a [Watcher] polled once per frame reloads sprites whose
// PNG files are rewritten:
//
//	w := tilekit.NewWatcher(reg, cfg.AssetDir)
//	defer w.Close()
//	// in Update:
//	w.Poll()
//
// Build with -tags tilekitdebug to make [ModeDebug] the default mode.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package tilekit
