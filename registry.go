package tilekit

import (
	"errors"
	"fmt"
	"io/fs"

	// PNG decoder for ebitenutil.NewImageFromReader.
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	// ErrAssetNotFound marks a sprite whose asset file does not exist.
	ErrAssetNotFound = errors.New("tilekit: sprite asset not found")
	// ErrAssetDecode marks a sprite whose asset could not be read or decoded.
	ErrAssetDecode = errors.New("tilekit: sprite asset decode failed")
	// ErrUnknownSprite is returned for ids outside the sprite table.
	ErrUnknownSprite = errors.New("tilekit: unknown sprite id")
)

// AssetError describes a sprite that failed to load. It matches its Kind
// (ErrAssetNotFound or ErrAssetDecode) and the underlying error with
// errors.Is.
type AssetError struct {
	Sprite SpriteID
	File   string
	Kind   error
	Err    error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("%v: %s (sprite %d): %v", e.Kind, e.File, e.Sprite, e.Err)
}

func (e *AssetError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Sprite is a loaded sprite: its declaration, its image, and the image's
// pixel size. A sprite that failed to load has a nil Image and zero size.
type Sprite struct {
	Def    SpriteDef
	Image  *ebiten.Image
	Width  int
	Height int
}

// Registry owns one image per declared sprite. Images, sizes and
// declarations are all indexed by SpriteID and always have Len() entries.
//
// A Registry is not safe for concurrent use. Ebitengine calls Update and Draw
// from a single goroutine, which is where a Registry is meant to live.
type Registry struct {
	// TileWidth and TileHeight are the pixel size of one map tile, used by
	// the tile-aware draw calls.
	TileWidth  int
	TileHeight int

	// Dialog is the sprite drawn by DrawDialog. DialogBorder is the fraction
	// of the sprite's width and height taken by the nine-patch border.
	Dialog       SpriteID
	DialogBorder float64

	table   SpriteTable
	assets  fs.FS
	sprites []Sprite
}

// NewRegistry creates a registry for table with assets read from fsys. No
// image is decoded until Load.
func NewRegistry(table SpriteTable, fsys fs.FS, tileWidth, tileHeight int) (*Registry, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	t := append(SpriteTable(nil), table...)
	sprites := make([]Sprite, len(t))
	for i, d := range t {
		sprites[i].Def = d
	}
	dialog, ok := t.Lookup(DefaultSprites[SpriteDialog].Name)
	if !ok {
		dialog = -1
	}
	return &Registry{
		TileWidth:    tileWidth,
		TileHeight:   tileHeight,
		Dialog:       dialog,
		DialogBorder: DefaultDialogBorder,
		table:        t,
		assets:       fsys,
		sprites:      sprites,
	}, nil
}

// Load decodes every declared sprite. Sprites that fail keep a nil image and
// zero size and loading continues; the returned error joins one *AssetError
// per failure. Calling Load again releases the images of the previous load.
func (r *Registry) Load() error {
	var errs []error
	for i := range r.sprites {
		id := SpriteID(i)
		img, err := r.decode(id)
		if err != nil {
			r.set(id, nil)
			errs = append(errs, err)
			debugf("%v", err)
			continue
		}
		r.set(id, img)
	}
	return errors.Join(errs...)
}

// Reload decodes sprite id again and swaps the new image in, releasing the
// old one. On failure the old image stays in place.
func (r *Registry) Reload(id SpriteID) error {
	if !r.table.Valid(id) {
		return fmt.Errorf("%w: %d", ErrUnknownSprite, id)
	}
	img, err := r.decode(id)
	if err != nil {
		return err
	}
	r.set(id, img)
	return nil
}

func (r *Registry) decode(id SpriteID) (*ebiten.Image, error) {
	name := r.table[id].Filename()
	f, err := r.assets.Open(name)
	if err != nil {
		kind := ErrAssetDecode
		if errors.Is(err, fs.ErrNotExist) {
			kind = ErrAssetNotFound
		}
		return nil, &AssetError{Sprite: id, File: name, Kind: kind, Err: err}
	}
	defer f.Close()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, &AssetError{Sprite: id, File: name, Kind: ErrAssetDecode, Err: err}
	}
	return img, nil
}

// releaseImage frees GPU memory held by a replaced sprite image.
var releaseImage = func(img *ebiten.Image) { img.Deallocate() }

// set swaps img in for sprite id, releasing the image it replaces.
func (r *Registry) set(id SpriteID, img *ebiten.Image) {
	s := &r.sprites[id]
	if s.Image != nil && s.Image != img {
		releaseImage(s.Image)
	}
	s.Image = img
	s.Width, s.Height = 0, 0
	if img != nil {
		b := img.Bounds()
		s.Width, s.Height = b.Dx(), b.Dy()
	}
}

// Len returns the number of declared sprites.
func (r *Registry) Len() int {
	return len(r.sprites)
}

// Table returns the registry's sprite table. The returned slice MUST NOT be
// mutated.
func (r *Registry) Table() SpriteTable {
	return r.table
}

// Assets returns the filesystem sprites are loaded from.
func (r *Registry) Assets() fs.FS {
	return r.assets
}

// Sprite returns the loaded sprite for id.
func (r *Registry) Sprite(id SpriteID) (Sprite, bool) {
	if !r.table.Valid(id) {
		return Sprite{}, false
	}
	return r.sprites[id], true
}

// Image returns the image for id, or nil when the sprite is unknown or
// not loaded.
func (r *Registry) Image(id SpriteID) *ebiten.Image {
	if !r.table.Valid(id) {
		return nil
	}
	return r.sprites[id].Image
}

// Size returns the pixel size of sprite id. Unknown and unloaded sprites
// are 0x0.
func (r *Registry) Size(id SpriteID) (w, h int) {
	if !r.table.Valid(id) {
		return 0, 0
	}
	s := &r.sprites[id]
	return s.Width, s.Height
}

// SizeTable returns the sprite sizes as a flat slice w0, h0, w1, h1, ...
// of length 2*Len().
func (r *Registry) SizeTable() []int {
	out := make([]int, 2*len(r.sprites))
	for i, s := range r.sprites {
		out[2*i] = s.Width
		out[2*i+1] = s.Height
	}
	return out
}

// Missing returns the ids of sprites without an image.
func (r *Registry) Missing() []SpriteID {
	var ids []SpriteID
	for i, s := range r.sprites {
		if s.Image == nil {
			ids = append(ids, SpriteID(i))
		}
	}
	return ids
}
