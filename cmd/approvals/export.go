package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/approvals/internal/export"
)

func newExportCmd(global *globalFlags) *cobra.Command {
	var (
		outDir   string
		toStdout bool
		toClip   bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every loaded request to " + export.Filename,
		Long: "export writes the full request set as CSV, ignoring any filter.\n" +
			"By default the file goes to export_dir from the config file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := loadHeadless(cmd.Context(), global, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var exporter export.Exporter
			switch {
			case toStdout:
				exporter = export.WriterExporter{W: cmd.OutOrStdout()}
			case toClip:
				exporter = export.ClipboardExporter{}
			default:
				dir := h.cfg.ExportDir
				if outDir != "" {
					dir = outDir
				}
				exporter = export.DirExporter{Dir: dir}
			}

			adapter := export.Adapter{Exporter: exporter}
			if !toStdout || global.verbose {
				adapter.Sink = h.sink()
			}
			return adapter.Run(h.records())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&outDir, "out", "o", "", "directory to write "+export.Filename+" into")
	f.BoolVar(&toStdout, "stdout", false, "write CSV to stdout")
	f.BoolVar(&toClip, "clipboard", false, "copy CSV to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("out", "stdout", "clipboard")
	return cmd
}
