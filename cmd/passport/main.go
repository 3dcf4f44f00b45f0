// Command passport is the visitor-side companion CLI. It keeps local
// stamp, queue and score state in a JSON file and talks to the backend
// for validation and sync.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/Adithya4code/Ambari/internal/ambari"
	"github.com/Adithya4code/Ambari/internal/passport"
	"github.com/Adithya4code/Ambari/internal/quiz"
	"github.com/Adithya4code/Ambari/internal/registry"
	"github.com/Adithya4code/Ambari/internal/scan"
	"github.com/Adithya4code/Ambari/internal/server"
)

const questionsPerQuiz = 5

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "usage: passport <command> [flags]")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "commands:")
	fmt.Fprintln(out, "  places             list known places and collected stamps")
	fmt.Fprintln(out, "  scan -raw <data>   decode a scanned QR payload and check in")
	fmt.Fprintln(out, "  checkin -place <id> -tag <code>")
	fmt.Fprintln(out, "                     check in with an NFC tag code")
	fmt.Fprintln(out, "  sync               replay queued check-ins against the backend")
	fmt.Fprintln(out, "  quiz -place <id> [-file <questions.txt>]")
	fmt.Fprintln(out, "                     take a quiz and earn points and a discount")
	fmt.Fprintln(out, "  status             show points, discounts and the sync queue")
	fmt.Fprintln(out, "  reset              clear all local passport state")
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return fmt.Errorf("missing command")
	}
	cmd, args := args[0], args[1:]

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	statePath := os.Getenv("AMBARI_STATE")
	if statePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving home dir: %w", err)
		}
		statePath = filepath.Join(home, ".ambari", "passport.json")
	}
	store, err := passport.NewFileStore(statePath)
	if err != nil {
		return fmt.Errorf("opening state file: %w", err)
	}
	pass := passport.New(store, logger)

	serverURL := os.Getenv("AMBARI_SERVER")
	if serverURL == "" {
		serverURL = "http://localhost:4000"
	}

	reg := registry.New(server.SeedPlaces)

	switch cmd {
	case "places":
		return runPlaces(stdout, reg, pass)
	case "scan":
		fs := flag.NewFlagSet("scan", flag.ContinueOnError)
		raw := fs.String("raw", "", "scanned payload")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *raw == "" {
			return fmt.Errorf("scan: -raw is required")
		}
		return runScan(stdout, reg, pass, *raw)
	case "checkin":
		fs := flag.NewFlagSet("checkin", flag.ContinueOnError)
		place := fs.String("place", "", "place id")
		tag := fs.String("tag", "", "nfc tag code")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *place == "" || *tag == "" {
			return fmt.Errorf("checkin: -place and -tag are required")
		}
		return runTagCheckin(stdout, reg, pass, *place, *tag)
	case "sync":
		return runSync(ctx, stdout, pass, serverURL)
	case "quiz":
		fs := flag.NewFlagSet("quiz", flag.ContinueOnError)
		place := fs.String("place", "", "place id")
		file := fs.String("file", "", "generated questions file (optional)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *place == "" {
			return fmt.Errorf("quiz: -place is required")
		}
		return runQuiz(stdout, stdin, reg, pass, *place, *file)
	case "status":
		return runStatus(stdout, pass)
	case "reset":
		return runReset(stdout, pass)
	default:
		usage(stdout)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runPlaces(out io.Writer, reg *registry.Registry, pass *passport.Passport) error {
	stamps, err := pass.Stamps()
	if err != nil {
		return err
	}
	collected := make(map[string]bool, len(stamps))
	for _, id := range stamps {
		collected[id] = true
	}

	for _, p := range reg.Places() {
		mark := " "
		if collected[p.ID] {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %-28s %s\n", mark, p.ID, p.Title)
	}
	fmt.Fprintf(out, "\n%d of %d stamps collected\n", len(stamps), len(reg.Places()))
	return nil
}

func runScan(out io.Writer, reg *registry.Registry, pass *passport.Passport, raw string) error {
	payload, err := scan.Decode(raw)
	if err != nil {
		return fmt.Errorf("decoding scan: %w", err)
	}
	res := reg.ValidateQR(payload.PlaceID, payload.Token)
	return finishCheckin(out, pass, res, payload.Token)
}

func runTagCheckin(out io.Writer, reg *registry.Registry, pass *passport.Passport, placeID, tag string) error {
	res := reg.ValidateTag(placeID, tag)
	return finishCheckin(out, pass, res, tag)
}

func finishCheckin(out io.Writer, pass *passport.Passport, res registry.Result, token string) error {
	switch res.Status {
	case registry.StatusUnknownPlace:
		return fmt.Errorf("unknown place")
	case registry.StatusInvalidToken:
		return fmt.Errorf("code does not match %s", res.Place.Title)
	}

	had, err := pass.HasStamp(res.Place.ID)
	if err != nil {
		return err
	}
	pass.CheckIn(res.Place.ID, token)
	if had {
		fmt.Fprintf(out, "Already stamped %s. Check-in queued again for the log.\n", res.Place.Title)
	} else {
		fmt.Fprintf(out, "Stamp collected: %s\n", res.Place.Title)
	}
	fmt.Fprintln(out, "Run 'passport sync' when online to upload queued check-ins.")
	return nil
}

func runSync(ctx context.Context, out io.Writer, pass *passport.Passport, serverURL string) error {
	client := passport.NewAPIClient(serverURL)
	report, err := pass.ProcessQueue(ctx, client)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "synced %d, failed %d\n", report.Synced, report.Failed)
	if report.Failed > 0 {
		fmt.Fprintln(out, "failed items stay queued and will be retried on the next sync")
	}
	return nil
}

func runQuiz(out io.Writer, in io.Reader, reg *registry.Registry, pass *passport.Passport, placeID, file string) error {
	place := reg.Lookup(placeID)
	if place == nil {
		return fmt.Errorf("unknown place %q", placeID)
	}

	var parsed []ambari.QuizQuestion
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading questions file: %w", err)
		}
		parsed = quiz.Parse(string(data))
	}
	questions := quiz.Select(placeID, parsed, questionsPerQuiz)

	fmt.Fprintf(out, "Quiz: %s (%d questions)\n\n", place.Title, len(questions))
	reader := bufio.NewReader(in)
	letters := []string{"a", "b", "c", "d"}

	correct := 0
	for i, q := range questions {
		fmt.Fprintf(out, "%d. %s\n", i+1, q.Prompt)
		for j, opt := range q.Options {
			fmt.Fprintf(out, "   %s) %s\n", letters[j], opt)
		}
		answer, err := readAnswer(out, reader)
		if err != nil {
			return err
		}
		if answer == q.CorrectIndex {
			fmt.Fprintln(out, "Correct!")
			correct++
		} else {
			fmt.Fprintf(out, "Wrong. The answer was %s) %s\n", letters[q.CorrectIndex], q.Options[q.CorrectIndex])
		}
		fmt.Fprintln(out)
	}

	outcome, err := quiz.Score(correct, len(questions))
	if err != nil {
		return err
	}
	result := ambari.QuizResult{
		PlaceID:            placeID,
		TotalQuestions:     len(questions),
		CorrectAnswers:     correct,
		PointsEarned:       outcome.Points,
		DiscountPercentage: outcome.DiscountPct,
		CompletedAt:        time.Now(),
	}
	if err := pass.SaveQuizResult(result); err != nil {
		return fmt.Errorf("saving quiz result: %w", err)
	}

	fmt.Fprintf(out, "Score: %d/%d. You earned %d points and a %d%% discount at %s.\n",
		correct, len(questions), outcome.Points, outcome.DiscountPct, place.Title)
	return nil
}

func readAnswer(out io.Writer, reader *bufio.Reader) (int, error) {
	for {
		fmt.Fprint(out, "Your answer (a-d): ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return 0, fmt.Errorf("reading answer: %w", err)
		}
		s := strings.ToLower(strings.TrimSpace(line))
		if len(s) == 1 && s[0] >= 'a' && s[0] <= 'd' {
			return int(s[0] - 'a'), nil
		}
		fmt.Fprintln(out, "Please answer a, b, c or d.")
	}
}

func runStatus(out io.Writer, pass *passport.Passport) error {
	points, err := pass.TotalPoints()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "total points: %d\n", points)

	discounts, err := pass.ActiveDiscounts()
	if err != nil {
		return err
	}
	if len(discounts) == 0 {
		fmt.Fprintln(out, "no active discounts")
	} else {
		fmt.Fprintln(out, "active discounts:")
		for _, d := range discounts {
			fmt.Fprintf(out, "  %-28s %d%% until %s\n",
				d.PlaceID, d.DiscountPercentage, d.ExpiresAt.Format("2006-01-02"))
		}
	}

	queue, err := pass.Queue()
	if err != nil {
		return err
	}
	pending := 0
	for _, item := range queue {
		if item.Status != ambari.QueueStatusSynced {
			pending++
		}
	}
	fmt.Fprintf(out, "sync queue: %d items, %d pending\n", len(queue), pending)
	return nil
}

func runReset(out io.Writer, pass *passport.Passport) error {
	if err := pass.ResetStamps(); err != nil {
		return err
	}
	if err := pass.ResetScores(); err != nil {
		return err
	}
	fmt.Fprintln(out, "passport state cleared")
	return nil
}
