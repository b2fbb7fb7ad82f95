package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phrazzld/flipiq/internal/domain"
	"github.com/phrazzld/flipiq/internal/platform/logger"
	"github.com/phrazzld/flipiq/internal/views"
)

func newChatCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Read and post to the local community thread",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			log := logger.Setup(cfg.Server, cmd.ErrOrStderr())

			app, err := newApplication(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer app.cleanup()

			return app.chat(cmd)
		},
	}
}

// chat prints the thread, then posts each line read from stdin until EOF or
// "/quit". Blank lines are ignored.
func (app *application) chat(cmd *cobra.Command) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	faint := color.New(color.Faint)

	writeThread(out, views.Thread(app.community.Messages(ctx), app.location))
	_, _ = faint.Fprintln(out, "Type a message and press Enter. /quit to leave.")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "/quit" {
			return nil
		}

		msg, err := app.community.SendMessage(ctx, line)
		if errors.Is(err, domain.ErrEmptyContent) {
			continue
		}
		if err != nil {
			return err
		}
		writeThread(out, views.Thread([]domain.ChatMessage{*msg}, app.location))
	}
	return scanner.Err()
}

// writeThread prints bubbles with the current user's messages pushed right.
func writeThread(w io.Writer, bubbles []views.Bubble) {
	name := color.New(color.FgBlue, color.Bold)
	mine := color.New(color.FgCyan)
	faint := color.New(color.Faint)

	for _, b := range bubbles {
		if b.Align == views.AlignRight {
			_, _ = mine.Fprintf(w, "%40s\n", b.Message)
			_, _ = faint.Fprintf(w, "%40s\n", b.Time)
			continue
		}
		_, _ = name.Fprintln(w, b.Username)
		_, _ = fmt.Fprintln(w, b.Message)
		_, _ = faint.Fprintln(w, b.Time)
	}
}

