package main

import (
	"fmt"
	"os"

	"github.com/amanogawa-dev/rekordcodec/pkg/anlz"
	"github.com/spf13/cobra"
)

var (
	dumpAnlzExt bool
	dumpAnlz2Ex bool
)

func newDumpAnlzCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump-anlz <ANLZ0000.DAT>",
		Short: "Dump every section of a per-track analysis file",
		Long: `dump-anlz decodes a PMAI-framed analysis file and prints its sections.
The three on-disk variants (.DAT, .EXT, .2EX) share one framing and decoder;
--ext/--2ex only label which variant is being read, for files that don't
carry the hint in their name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDumpAnlz(cmd, args[0])
		},
	}
	cmd.Flags().BoolVar(&dumpAnlzExt, "ext", false, "label the file as the .EXT variant")
	cmd.Flags().BoolVar(&dumpAnlz2Ex, "2ex", false, "label the file as the .2EX variant")
	return cmd
}

func variantLabel(path string) string {
	switch {
	case dumpAnlz2Ex:
		return "2EX"
	case dumpAnlzExt:
		return "EXT"
	default:
		return autodetectVariant(path)
	}
}

func autodetectVariant(path string) string {
	switch {
	case len(path) >= 4 && path[len(path)-4:] == ".EXT":
		return "EXT"
	case len(path) >= 4 && path[len(path)-4:] == ".2EX":
		return "2EX"
	default:
		return "DAT"
	}
}

func runDumpAnlz(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	file, err := anlz.Read(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "variant: %s, %d sections\n", variantLabel(path), len(file.Sections))
	for i, s := range file.Sections {
		fmt.Fprintf(out, "  [%d] %s: %s\n", i, s.Kind, describeAnlzPayload(s.Payload))
	}
	return nil
}

func describeAnlzPayload(c anlz.Content) string {
	switch p := c.(type) {
	case anlz.BeatGrid:
		return fmt.Sprintf("%d beats", len(p.Beats))
	case anlz.PathPayload:
		return fmt.Sprintf("path %q", p.Path)
	case anlz.VBRPayload:
		return fmt.Sprintf("%d bytes of VBR index", len(p.Raw))
	case anlz.CueList:
		return fmt.Sprintf("list type %v, %d cues", p.ListType, len(p.Cues)+len(p.ExtendedCues))
	case anlz.WaveformPreview:
		return fmt.Sprintf("%d columns (preview)", len(p.Columns))
	case anlz.TinyWaveformPreview:
		return fmt.Sprintf("%d columns (tiny preview)", len(p.Columns))
	case anlz.WaveformDetail:
		return fmt.Sprintf("%d columns (detail)", len(p.Columns))
	case anlz.ColorWaveformPreview:
		return fmt.Sprintf("%d columns (color preview)", len(p.Columns))
	case anlz.ColorWaveformDetail:
		return fmt.Sprintf("%d columns (color detail)", len(p.Columns))
	case anlz.SongStructure:
		return fmt.Sprintf("mood %v, %d entries", p.Mood, len(p.Entries))
	case anlz.Unknown:
		return fmt.Sprintf("%d raw bytes", len(p.Raw))
	default:
		return fmt.Sprintf("%T", p)
	}
}
