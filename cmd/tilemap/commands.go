package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/phanxgames/tilekit/tilemap"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tilemap",
		Short:         "Create, inspect and edit tile map files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newNewCmd(),
		newInfoCmd(),
		newFillCmd(),
		newSetCmd(),
		newResizeCmd(),
	)
	return root
}

// dims holds the -W -H -L flags shared by new and resize.
type dims struct {
	width, height, layers int32
}

func (d *dims) bind(cmd *cobra.Command) {
	cmd.Flags().Int32VarP(&d.width, "width", "W", 32, "map width in tiles")
	cmd.Flags().Int32VarP(&d.height, "height", "H", 32, "map height in tiles")
	cmd.Flags().Int32VarP(&d.layers, "layers", "L", 1, "number of layers")
}

func newNewCmd() *cobra.Command {
	var d dims
	var force bool
	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create an empty map file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !force {
				if _, err := os.Stat(path); err == nil {
					return errors.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}
			m, err := tilemap.New(d.width, d.height, d.layers)
			if err != nil {
				return err
			}
			if err := tilemap.Save(path, m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s: %dx%dx%d\n", path, m.Width, m.Height, m.Layers)
			return nil
		},
	}
	d.bind(cmd)
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing map")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print map dimensions and per-layer tile counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := tilemap.Load(args[0])
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), args[0], m)
			return nil
		},
	}
}

// printInfo writes the map header followed by one line per layer listing
// each tile value and how often it occurs, in ascending value order.
func printInfo(w io.Writer, path string, m *tilemap.Map) {
	fmt.Fprintf(w, "%s: %dx%d, %d layers, %d tiles\n", path, m.Width, m.Height, m.Layers, len(m.Tiles))
	for l := 0; l < int(m.Layers); l++ {
		counts := make(map[int16]int)
		for _, v := range m.Layer(l) {
			counts[v]++
		}
		values := make([]int, 0, len(counts))
		for v := range counts {
			values = append(values, int(v))
		}
		sort.Ints(values)

		fmt.Fprintf(w, "layer %d:", l)
		for _, v := range values {
			fmt.Fprintf(w, " %d=%d", v, counts[int16(v)])
		}
		fmt.Fprintln(w)
	}
}

func newFillCmd() *cobra.Command {
	var layer int
	var value int16
	cmd := &cobra.Command{
		Use:   "fill <file>",
		Short: "Set every tile of a layer to one value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(args[0], func(m *tilemap.Map) error {
				if !m.Fill(layer, value) {
					return errors.Errorf("layer %d out of range (map has %d)", layer, m.Layers)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&layer, "layer", "l", 0, "layer to fill")
	cmd.Flags().Int16VarP(&value, "value", "v", 0, "tile value")
	return cmd
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <x> <y> <layer> <value>",
		Short: "Set a single tile",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			coords := make([]int, 3)
			for i, s := range args[1:4] {
				n, err := strconv.Atoi(s)
				if err != nil {
					return errors.Wrapf(err, "argument %q", s)
				}
				coords[i] = n
			}
			value, err := strconv.ParseInt(args[4], 10, 16)
			if err != nil {
				return errors.Wrapf(err, "value %q", args[4])
			}
			return edit(args[0], func(m *tilemap.Map) error {
				if !m.Set(coords[0], coords[1], coords[2], int16(value)) {
					return errors.Errorf("tile (%d,%d) layer %d out of range for %dx%dx%d map",
						coords[0], coords[1], coords[2], m.Width, m.Height, m.Layers)
				}
				return nil
			})
		},
	}
}

func newResizeCmd() *cobra.Command {
	var d dims
	cmd := &cobra.Command{
		Use:   "resize <file>",
		Short: "Resize a map, keeping the overlapping tiles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(args[0], func(m *tilemap.Map) error {
				w, h, l := m.Width, m.Height, m.Layers
				if cmd.Flags().Changed("width") {
					w = d.width
				}
				if cmd.Flags().Changed("height") {
					h = d.height
				}
				if cmd.Flags().Changed("layers") {
					l = d.layers
				}
				return m.Resize(w, h, l)
			})
		},
	}
	d.bind(cmd)
	return cmd
}

// edit loads the map at path, applies fn and saves the result.
func edit(path string, fn func(m *tilemap.Map) error) error {
	m, err := tilemap.Load(path)
	if err != nil {
		return err
	}
	if err := fn(m); err != nil {
		return errors.Wrap(err, path)
	}
	return tilemap.Save(path, m)
}
