// Package cli implements zfake's command-line subcommands.
package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/pflag"
	"github.com/zarlcorp/core/pkg/zstyle"
	"golang.org/x/term"

	"github.com/zarlcorp/zfake/internal/config"
	"github.com/zarlcorp/zfake/internal/feed"
	"github.com/zarlcorp/zfake/internal/identity"
	"github.com/zarlcorp/zfake/internal/locale"
)

// Output formats for the generate command.
const (
	FormatTable = "table"
	FormatTSV   = "tsv"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

var header = []string{"#", "id", "name", "address", "phone"}

// Terminal describes the output stream.
type Terminal struct {
	IsTTY bool
	Width int
}

// Stdout inspects os.Stdout.
func Stdout() Terminal {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return Terminal{}
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		w = 0
	}
	return Terminal{IsTTY: true, Width: w}
}

// GenerateRequest is a parsed generate command line.
type GenerateRequest struct {
	Options identity.Options
	Count   int
	Format  string
}

// ParseGenerate parses generate flags over the defaults in cfg. When no
// seed is given by either, a random one is drawn.
func ParseGenerate(args []string, cfg config.Config, out Terminal) (GenerateRequest, error) {
	fs := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	region := fs.StringP("region", "r", cfg.Options.Region.Code(), "region: us, ru or de")
	seed := fs.StringP("seed", "s", "", "seed, up to 16 digits (default random)")
	rate := fs.StringP("mistakes", "m", strconv.FormatFloat(cfg.Options.MistakeRate, 'f', -1, 64), "mistake rate, 0-1000")
	count := fs.IntP("count", "n", feed.InitialBatch, "number of records")
	format := fs.StringP("format", "f", "", "output format: table, tsv, csv or json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return GenerateRequest{}, fmt.Errorf("usage: zfake generate [flags]\n%s", fs.FlagUsages())
		}
		return GenerateRequest{}, err
	}
	if fs.NArg() > 0 {
		return GenerateRequest{}, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	r, err := locale.Parse(*region)
	if err != nil {
		return GenerateRequest{}, err
	}

	m, err := identity.ParseMistakeRate(*rate)
	if err != nil {
		return GenerateRequest{}, err
	}

	opts := identity.Options{Region: r, MistakeRate: m}
	switch {
	case fs.Changed("seed"):
		s, err := identity.ParseSeed(*seed)
		if err != nil {
			return GenerateRequest{}, err
		}
		opts.Seed = s
	case cfg.SeedSet:
		opts.Seed = cfg.Options.Seed
	default:
		opts.Seed = identity.RandomSeed()
	}

	if *count < 0 {
		return GenerateRequest{}, fmt.Errorf("count must not be negative: %d", *count)
	}

	f := strings.ToLower(*format)
	if f == "" {
		f = FormatTSV
		if out.IsTTY {
			f = FormatTable
		}
	}
	switch f {
	case FormatTable, FormatTSV, FormatCSV, FormatJSON:
	default:
		return GenerateRequest{}, fmt.Errorf("unknown format %q", *format)
	}

	return GenerateRequest{Options: opts, Count: *count, Format: f}, nil
}

// Collect pages through a driver until it holds at least count records and
// returns the first count of them, exactly as the table would show them.
func Collect(d *feed.Driver, opts identity.Options, count int) []identity.User {
	d.SetOptions(opts)
	for d.Len() < count {
		if !d.Scroll(0) {
			break
		}
	}
	users := d.Records()
	if len(users) > count {
		users = users[:count]
	}
	return users
}

// Generate runs the generate command, writing records to w.
func Generate(args []string, cfg config.Config, w io.Writer, out Terminal, log *slog.Logger) error {
	req, err := ParseGenerate(args, cfg, out)
	if err != nil {
		return err
	}

	log.Info("generate",
		"region", req.Options.Region.String(),
		"seed", req.Options.Seed,
		"mistake_rate", req.Options.MistakeRate,
		"count", req.Count,
	)

	d := feed.New(identity.New(), 0, log)
	users := Collect(d, req.Options, req.Count)

	switch req.Format {
	case FormatJSON:
		return writeJSON(w, users)
	case FormatCSV:
		return writeCSV(w, users)
	case FormatTable:
		return writeTable(w, users, out.Width)
	}
	return writeTSV(w, users)
}

// CmdGenerate runs the generate command against stdout. The caller reports
// the error and picks the exit code.
func CmdGenerate(args []string, cfg config.Config, log *slog.Logger) error {
	return Generate(args, cfg, os.Stdout, Stdout(), log)
}

// Regions writes the supported regions with their tags and phone masks.
func Regions(w io.Writer) {
	for _, r := range locale.All() {
		fmt.Fprintf(w, "  %-4s %-8s %-6s %s\n", r.Code(), r.String(), r.Tag(), locale.PhoneMask(r))
	}
}

// CmdRegions prints the supported regions.
func CmdRegions() {
	Regions(os.Stdout)
}

func row(i int, u identity.User) []string {
	return []string{strconv.Itoa(i + 1), u.ID, u.Name, u.Address, u.Phone}
}

func writeTSV(w io.Writer, users []identity.User) error {
	for i, u := range users {
		if _, err := fmt.Fprintln(w, strings.Join(row(i, u), "\t")); err != nil {
			return fmt.Errorf("write tsv: %w", err)
		}
	}
	return nil
}

func writeCSV(w io.Writer, users []identity.User) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for i, u := range users {
		if err := cw.Write(row(i, u)); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, users []identity.User, width int) error {
	rows := make([][]string, len(users))
	for i, u := range users {
		rows[i] = row(i, u)
	}

	headerStyle := lipgloss.NewStyle().Foreground(zstyle.ZburnAccent).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(zstyle.MutedText).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(r, _ int) lipgloss.Style {
			if r == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	if width > 0 {
		t = t.Width(width)
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
