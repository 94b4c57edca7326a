package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amanogawa-dev/rekordcodec/pkg/pdb"
	"github.com/spf13/cobra"
)

func newListPlaylistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-playlists <export.pdb>",
		Short: "Walk the playlist tree into a nested listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListPlaylists(cmd, args[0])
		},
	}
}

func runListPlaylists(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	db, err := pdb.Read(f, info.Size())
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	entriesByPlaylist := make(map[uint32]int)
	for _, e := range db.PlaylistEntries() {
		entriesByPlaylist[e.PlaylistID]++
	}

	out := cmd.OutOrStdout()
	for _, node := range db.PlaylistTree() {
		printPlaylistNode(out, node, 0, entriesByPlaylist)
	}
	return nil
}

func printPlaylistNode(out io.Writer, node *pdb.PlaylistNode, depth int, entriesByPlaylist map[uint32]int) {
	indent := strings.Repeat("  ", depth)
	if node.IsFolder() {
		fmt.Fprintf(out, "%s%s/\n", indent, node.Name.Text())
	} else {
		fmt.Fprintf(out, "%s%s (%d tracks)\n", indent, node.Name.Text(), entriesByPlaylist[node.ID])
	}
	for _, child := range node.Children {
		printPlaylistNode(out, child, depth+1, entriesByPlaylist)
	}
}
