package main

import (
	"fmt"
	"os"

	"github.com/amanogawa-dev/rekordcodec/pkg/pdb"
	"github.com/spf13/cobra"
)

func newDumpPDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump-pdb <export.pdb>",
		Short: "Dump every table of a paged track database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDumpPDB(cmd, args[0])
		},
	}
}

func runDumpPDB(cmd *cobra.Command, path string) error {
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

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "header: page size %d, %d tables\n", db.PageSize, len(db.Header.Tables))

	fmt.Fprintf(out, "\ntracks (%d):\n", len(db.Tracks()))
	for _, t := range db.Tracks() {
		fmt.Fprintf(out, "  #%d %q  artist=%d album=%d duration=%ds bpm=%.2f\n",
			t.ID, t.Title.Text(), t.ArtistID, t.AlbumID, t.Duration, float64(t.Tempo)/100)
	}

	fmt.Fprintf(out, "\nartists (%d):\n", len(db.Artists()))
	for _, a := range db.Artists() {
		fmt.Fprintf(out, "  #%d %q\n", a.ID, a.Name.Text())
	}

	fmt.Fprintf(out, "\nalbums (%d):\n", len(db.Albums()))
	for _, a := range db.Albums() {
		fmt.Fprintf(out, "  #%d %q (artist %d)\n", a.ID, a.Name.Text(), a.ArtistID)
	}

	fmt.Fprintf(out, "\ngenres (%d):\n", len(db.Genres()))
	for _, g := range db.Genres() {
		fmt.Fprintf(out, "  #%d %q\n", g.ID, g.Name.Text())
	}

	fmt.Fprintf(out, "\nkeys (%d):\n", len(db.Keys()))
	for _, k := range db.Keys() {
		fmt.Fprintf(out, "  #%d %q (order %d)\n", k.ID, k.Name.Text(), k.Order)
	}

	fmt.Fprintf(out, "\nplaylist entries (%d):\n", len(db.PlaylistEntries()))
	fmt.Fprintf(out, "history playlists (%d), history entries (%d)\n",
		len(db.HistoryPlaylists()), len(db.HistoryEntries()))

	return nil
}
