package tilemap

import (
	"bufio"
	"encoding/binary"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const headerSize = 12

// Read decodes a map from r.
func Read(r io.Reader) (*Map, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, readError(err, "header")
	}
	w := int32(binary.LittleEndian.Uint32(hdr[0:]))
	h := int32(binary.LittleEndian.Uint32(hdr[4:]))
	l := int32(binary.LittleEndian.Uint32(hdr[8:]))

	m, err := New(w, h, l)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 2*len(m.Tiles))
	if n, err := io.ReadFull(r, buf); err != nil {
		return nil, errors.Wrapf(readError(err, "tiles"), "got %d of %d bytes", n, len(buf))
	}
	for i := range m.Tiles {
		m.Tiles[i] = int16(binary.LittleEndian.Uint16(buf[2*i:]))
	}
	return m, nil
}

// readError maps short reads onto ErrTruncated and passes other I/O errors
// through.
func readError(err error, what string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrapf(ErrTruncated, "reading %s", what)
	}
	return errors.Wrapf(err, "tilemap: reading %s", what)
}

// WriteTo encodes m to w. It implements io.WriterTo.
//
// Maps that Read would reject are refused, so Save never replaces a file
// with one Load cannot open.
func (m *Map) WriteTo(w io.Writer) (int64, error) {
	count, err := tileCount(m.Width, m.Height, m.Layers)
	if err != nil {
		return 0, err
	}
	if len(m.Tiles) != count {
		return 0, errors.Wrapf(ErrInvalidHeader, "%dx%dx%d map holds %d tiles",
			m.Width, m.Height, m.Layers, len(m.Tiles))
	}
	buf := make([]byte, headerSize+2*len(m.Tiles))
	binary.LittleEndian.PutUint32(buf[0:], uint32(m.Width))
	binary.LittleEndian.PutUint32(buf[4:], uint32(m.Height))
	binary.LittleEndian.PutUint32(buf[8:], uint32(m.Layers))
	for i, t := range m.Tiles {
		binary.LittleEndian.PutUint16(buf[headerSize+2*i:], uint16(t))
	}
	n, err := w.Write(buf)
	if err != nil {
		return int64(n), errors.Wrap(err, "tilemap: writing map")
	}
	return int64(n), nil
}

// Load reads the map file at path. A missing file yields an error matching
// ErrNotFound; short files yield ErrTruncated.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "tilemap: open %s", path)
	}
	defer f.Close()

	m, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return m, nil
}

// Save writes m to path. The data goes to a temporary file in the same
// directory which then replaces path, so readers never see a partial map.
func Save(path string, m *Map) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "tilemap: create temp file in %s", dir)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "tilemap: chmod %s", tmpName)
	}
	if _, err := m.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "%s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "tilemap: close %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "tilemap: replace %s", path)
	}
	return nil
}
