package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/stagecheck/cmd/stagecheck"
	"github.com/arthur-debert/stagecheck/pkg/style"
	"github.com/arthur-debert/stagecheck/pkg/ui"
)

func main() {
	rootCmd := stagecheck.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		painter := style.NewPainter(ui.DetectStyled(os.Stderr))
		fmt.Fprintln(os.Stderr, painter.Error(fmt.Sprintf(stagecheck.MsgErrorFormat, err)))
		os.Exit(1)
	}
}
