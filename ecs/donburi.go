package ecs

import (
	"sort"

	"github.com/phanxgames/tilekit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// SpriteData selects the sprite an entity is drawn with and its opacity.
type SpriteData struct {
	ID    tilekit.SpriteID
	Alpha float64
}

// TilePosition is an entity's position in tile coordinates. Fractional values
// place the sprite between tiles.
type TilePosition struct {
	X, Y float64
}

// ReloadEvent reports a sprite whose image was replaced by hot-reload.
type ReloadEvent struct {
	ID tilekit.SpriteID
}

var (
	// Sprite is the component holding an entity's SpriteData.
	Sprite = donburi.NewComponentType[SpriteData](SpriteData{Alpha: 1})
	// Position is the component holding an entity's TilePosition.
	Position = donburi.NewComponentType[TilePosition]()

	// SpriteReloaded is the Donburi event type published by PublishReloads.
	SpriteReloaded = events.NewEventType[ReloadEvent]()
)

var drawable = donburi.NewQuery(filter.Contains(Sprite, Position))

// NewSpriteEntity creates an entity drawn with sprite id at tile (x, y).
func NewSpriteEntity(world donburi.World, id tilekit.SpriteID, x, y float64) donburi.Entity {
	e := world.Create(Sprite, Position)
	entry := world.Entry(e)
	Sprite.SetValue(entry, SpriteData{ID: id, Alpha: 1})
	Position.SetValue(entry, TilePosition{X: x, Y: y})
	return e
}

type drawItem struct {
	sprite SpriteData
	pos    TilePosition
}

// Draw draws every entity that has both a Sprite and a Position. Entities
// lower on the map (larger Y) are drawn later so they overlap the ones
// behind them; ties keep query order.
func Draw(world donburi.World, reg *tilekit.Registry, dst tilekit.Target, cam tilekit.Camera) int {
	var items []drawItem
	drawable.Each(world, func(entry *donburi.Entry) {
		items = append(items, drawItem{
			sprite: *Sprite.Get(entry),
			pos:    *Position.Get(entry),
		})
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].pos.Y < items[j].pos.Y
	})
	for _, it := range items {
		reg.DrawSpriteAtTile(dst, it.sprite.ID, it.pos.X, it.pos.Y, cam, tilekit.WithAlpha(it.sprite.Alpha))
	}
	return len(items)
}

// PublishReloads queues one ReloadEvent per id on world. Consume them with
// SpriteReloaded.Subscribe and ProcessEvents.
func PublishReloads(world donburi.World, ids []tilekit.SpriteID) {
	for _, id := range ids {
		SpriteReloaded.Publish(world, ReloadEvent{ID: id})
	}
}
