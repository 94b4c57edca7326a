package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amanogawa-dev/rekordcodec/pkg/setting"
	"github.com/spf13/cobra"
)

func newDumpSettingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump-setting <SETTING.DAT>",
		Short: "Dump a device preference file",
		Long: `dump-setting decodes one of the four fixed device preference files
(DEVSETTING.DAT, DJMMYSETTING.DAT, MYSETTING.DAT, MYSETTING2.DAT). Which
payload shape to expect is determined from the file's own name, since
MySetting and MySetting2 are indistinguishable by length alone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDumpSetting(cmd, args[0])
		},
	}
}

func settingFileKindFor(path string) (setting.FileKind, error) {
	switch strings.ToUpper(filepath.Base(path)) {
	case "DEVSETTING.DAT":
		return setting.FileDevSetting, nil
	case "DJMMYSETTING.DAT":
		return setting.FileDJMMySetting, nil
	case "MYSETTING.DAT":
		return setting.FileMySetting, nil
	case "MYSETTING2.DAT":
		return setting.FileMySetting2, nil
	default:
		return 0, fmt.Errorf("%s: not one of the four recognized setting filenames", path)
	}
}

func runDumpSetting(cmd *cobra.Command, path string) error {
	kind, err := settingFileKindFor(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := setting.Read(f, kind)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "brand: %s\n", s.Brand)
	fmt.Fprintf(out, "software: %s\n", s.Software)
	fmt.Fprintf(out, "version: %s\n", s.Version)
	if s.ChecksumMismatch != nil {
		fmt.Fprintf(out, "checksum: MISMATCH (%v)\n", s.ChecksumMismatch)
	} else {
		fmt.Fprintln(out, "checksum: ok")
	}
	fmt.Fprintf(out, "payload: %+v\n", s.Data)
	return nil
}
