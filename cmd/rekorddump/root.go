package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rekorddump",
	Short: "Inspect Rekordbox export.pdb, ANLZ and SETTING files",
	Long: `rekorddump decodes Pioneer Rekordbox's on-disk file formats and prints
their contents: the paged track database (export.pdb), per-track analysis
files (ANLZ0000.DAT/.EXT/.2EX) and device SETTING.DAT files.`,
}

func init() {
	rootCmd.AddCommand(newDumpPDBCmd())
	rootCmd.AddCommand(newDumpAnlzCmd())
	rootCmd.AddCommand(newDumpSettingCmd())
	rootCmd.AddCommand(newListPlaylistsCmd())
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
