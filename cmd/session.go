package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alantheprice/calcmenu/pkg/configuration"
	"github.com/alantheprice/calcmenu/pkg/exercises"
	"github.com/alantheprice/calcmenu/pkg/menu"
	"github.com/alantheprice/calcmenu/pkg/prompt"
	"github.com/alantheprice/calcmenu/pkg/utils"
)

// runMenu opens a session on the command's streams and runs the named menu.
func runMenu(cmd *cobra.Command, cfg *configuration.Config, name string) error {
	logger, err := utils.NewLogger(utils.LogOptions{
		Path:      cfg.LogFile,
		JSON:      cfg.JSONLogs,
		SessionID: cfg.SessionID,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error closing logger: %v\n", err)
		}
	}()

	in := cmd.InOrStdin()
	echo := cfg.ShouldEcho(isTerminal(in))
	err = runSession(in, cmd.OutOrStdout(), logger, name, echo)
	if err != nil {
		logger.LogError(err)
	}
	return err
}

// runSession runs one menu to completion. Running out of input ends the
// session normally.
func runSession(in io.Reader, out io.Writer, logger *utils.Logger, name string, echo bool) error {
	reader := prompt.NewReader(in, out, prompt.WithEcho(echo), prompt.WithLogger(logger))
	console := exercises.NewConsole(reader)

	m, err := console.Build(name, menu.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Logf("Session started: menu=%s echo=%v", name, echo)

	if err := console.Run(m); err != nil {
		if errors.Is(err, prompt.ErrEndOfInput) {
			logger.Log("Session ended: input exhausted")
			return nil
		}
		return err
	}
	logger.Log("Session ended")
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
