// Package ecs connects tilekit to the [Donburi] entity component system.
//
// Entities with both a [Sprite] and a [Position] component are drawn by
// [Draw]. Sprite hot-reloads reported by a tilekit.Watcher can be published
// to the world with [PublishReloads] and consumed through [SpriteReloaded].
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
