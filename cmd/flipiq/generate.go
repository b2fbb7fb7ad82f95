package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phrazzld/flipiq/internal/domain"
	"github.com/phrazzld/flipiq/internal/platform/logger"
	"github.com/phrazzld/flipiq/internal/views"
)

type generateOptions struct {
	subject  string
	topic    string
	output   outputFormat
	review   bool
	calendar bool
}

func newGenerateCommand(root *rootOptions) *cobra.Command {
	opts := &generateOptions{output: formatText}

	command := &cobra.Command{
		Use:   "generate",
		Short: "Generate a study guide for a subject and topic",
		Example: `  flipiq generate --subject Science --topic "Cell biology"
  flipiq generate --subject Mathematics --topic Limits -o yaml
  flipiq generate --subject History --topic Rome --review --calendar`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			// stdout carries the guide; logs go to stderr.
			log := logger.Setup(cfg.Server, cmd.ErrOrStderr())

			app, err := newApplication(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer app.cleanup()

			return app.generate(cmd, opts)
		},
	}

	flags := command.Flags()
	flags.StringVar(&opts.subject, "subject", "", "subject, e.g. one of: "+strings.Join(views.Subjects, ", "))
	flags.StringVar(&opts.topic, "topic", "", "topic within the subject")
	flags.VarP(&opts.output, "output", "o", fmt.Sprintf("output format. Possible values are %v", allFormats))
	flags.BoolVar(&opts.review, "review", false, "review the flashcards interactively after generating")
	flags.BoolVar(&opts.calendar, "calendar", false, "print this month's calendar with study days marked")
	_ = command.MarkFlagRequired("subject")
	_ = command.MarkFlagRequired("topic")

	return command
}

func (app *application) generate(cmd *cobra.Command, opts *generateOptions) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	guide, err := app.guides.CreateStudyGuide(ctx, opts.subject, opts.topic)
	if err != nil {
		return err
	}

	if msg := app.generator.Status().LastError; msg != "" {
		warn := color.New(color.FgYellow)
		_, _ = warn.Fprintln(cmd.ErrOrStderr(), msg)
	}

	if err := writeGuide(out, guide, opts.output, app.location); err != nil {
		return err
	}

	if opts.calendar {
		cal := views.NewCalendar(time.Now(), app.location)
		if err := writeCalendar(out, cal.Render(ctx, app.guides, time.Now())); err != nil {
			return err
		}
	}

	if opts.review {
		return runReview(cmd.InOrStdin(), out, views.NewReview(guide))
	}
	return nil
}

// runReview drives a flip-card session from line commands on in:
// f flips, n and p move, q quits. EOF ends the session.
func runReview(in io.Reader, out io.Writer, review *views.Review) error {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	scanner := bufio.NewScanner(in)

	for {
		state := review.State()
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
		_, _ = faint.Fprintf(out, "%s  %s\n", state.Progress, state.Label)
		_, _ = bold.Fprintln(out, state.Text)
		_, _ = faint.Fprint(out, "[f]lip [n]ext [p]revious [q]uit > ")

		if !scanner.Scan() {
			_, _ = fmt.Fprintln(out)
			return scanner.Err()
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "f", "":
			review.Flip()
		case "n":
			if !review.Next() {
				_, _ = faint.Fprintln(out, "Already at the last card.")
			}
		case "p":
			if !review.Previous() {
				_, _ = faint.Fprintln(out, "Already at the first card.")
			}
		case "q":
			return nil
		default:
			_, _ = faint.Fprintln(out, "Unknown command.")
		}
	}
}

func printGuideText(w io.Writer, guide *domain.StudyGuide, loc *time.Location) error {
	title := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgBlue, color.Bold)
	faint := color.New(color.Faint)

	if _, err := title.Fprintf(w, "%s: %s\n", guide.Subject, guide.Topic); err != nil {
		return err
	}
	_, _ = faint.Fprintf(w, "%s  %s\n\n", views.CardCountLabel(len(guide.Flashcards)), views.CreatedLabel(guide.CreatedAt, loc))

	for i, card := range guide.Flashcards {
		_, _ = label.Fprintf(w, "%2d. Q: ", i+1)
		_, _ = fmt.Fprintln(w, card.Question)
		_, _ = label.Fprint(w, "    A: ")
		_, _ = fmt.Fprintln(w, card.Answer)
	}

	_, _ = title.Fprintln(w, "\nStudy schedule")
	for _, s := range guide.Schedule {
		_, _ = fmt.Fprintf(w, "  %s  %s\n", s.Date.In(loc).Format("Mon Jan 2"), s.Topic)
	}
	return nil
}

func writeCalendar(w io.Writer, view views.CalendarView) error {
	title := color.New(color.FgCyan, color.Bold)
	study := color.New(color.FgGreen, color.Bold)
	selected := color.New(color.ReverseVideo)
	faint := color.New(color.Faint)

	if _, err := title.Fprintf(w, "\n%s\n", view.Title); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, " Su  Mo  Tu  We  Th  Fr  Sa")

	for i, d := range view.Days {
		cell := fmt.Sprintf("%3d", d.Day)
		mark := " "
		if d.HasSessions {
			mark = "*"
		}
		switch {
		case d.IsSelected:
			_, _ = selected.Fprint(w, cell)
		case d.HasSessions:
			_, _ = study.Fprint(w, cell)
		case !d.IsCurrentMonth:
			_, _ = faint.Fprint(w, cell)
		default:
			_, _ = fmt.Fprint(w, cell)
		}
		_, _ = fmt.Fprint(w, mark)
		if i%7 == 6 {
			_, _ = fmt.Fprintln(w)
		}
	}

	for _, s := range view.Sessions {
		_, _ = fmt.Fprintf(w, "  %s  %s\n", s.Time, s.Topic)
	}
	return nil
}

