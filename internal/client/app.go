// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-seltzer-tracker/internal/adapter"
	"github.com/MKhiriev/go-seltzer-tracker/internal/app"
	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type App struct {
	adapter adapter.ServerAdapter
	tokens  TokenStore
	out     io.Writer
	now     func() time.Time

	commands map[string]command

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, tokens TokenStore, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		adapter: serverAdapter,
		tokens:  tokens,
		out:     out,
		now:     time.Now,
		logger:  logger,
	}

	a.commands = map[string]command{
		"register":      {"register <username> <email> <password>", a.register},
		"login":         {"login <username> <password>", a.login},
		"logout":        {"logout", a.logout},
		"me":            {"me", a.me},
		"brands":        {"brands", a.brands},
		"brand-add":     {"brand-add <name> [flavor...]", a.brandAdd},
		"brand-delete":  {"brand-delete <brand_id>", a.brandDelete},
		"flavor-add":    {"flavor-add <brand_id> <flavor>", a.flavorAdd},
		"flavor-remove": {"flavor-remove <brand_id> <flavor>", a.flavorRemove},
		"log":           {"log [-date YYYY-MM-DD] [-time HH:MM] [-notes text] <brand_id> <flavor> <rating>", a.logEntry},
		"list":          {"list [-limit n]", a.list},
		"show":          {"show <seltzer_id>", a.show},
		"edit":          {"edit [-rating n] [-notes text] <seltzer_id>", a.edit},
		"delete":        {"delete <seltzer_id>", a.delete},
		"stats":         {"stats", a.stats},
		"search":        {"search [-filter all|brand|flavor] [query...]", a.search},
		"version":       {"version", a.version},
		"health":        {"health", a.health},
	}

	return a
}

// Run executes the subcommand named by args[0] with the remaining
// arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrUsage
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	if token != "" {
		a.adapter.SetToken(token)
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")

	err = cmd.run(ctx, args[1:])
	if errors.Is(err, ErrUsage) {
		fmt.Fprintf(a.out, "usage: seltzer %s\n", cmd.usage)
	}
	if errors.Is(err, adapter.ErrUnauthorized) && !strings.Contains(err.Error(), app.MsgInvalidCredentials) {
		fmt.Fprintln(a.out, helpStyle.Render("Not logged in. Run: seltzer login <username> <password>"))
	}
	return err
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: seltzer [-a server] [-timeout d] <command> [args]")
	fmt.Fprintln(a.out, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
}

func exactArgs(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: want %d, got %d", ErrUsage, n, len(args))
	}
	return nil
}

// parseFlags parses subcommand flags; usage is printed by Run.
func parseFlags(fs *flag.FlagSet, args []string) error {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	if err := exactArgs(args, 3); err != nil {
		return err
	}

	err := a.adapter.Register(ctx, models.RegisterRequest{Username: args[0], Email: args[1], Password: args[2]})
	if err != nil {
		return err
	}
	if err = a.tokens.Save(a.adapter.Token()); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered and logged in as %s.\n", args[0])
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	if err := exactArgs(args, 2); err != nil {
		return err
	}

	if err := a.adapter.Login(ctx, models.LoginRequest{Username: args[0], Password: args[1]}); err != nil {
		return err
	}
	if err := a.tokens.Save(a.adapter.Token()); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s.\n", args[0])
	return nil
}

// logout forgets the local token even when the server call fails.
func (a *App) logout(ctx context.Context, args []string) error {
	if err := exactArgs(args, 0); err != nil {
		return err
	}

	serverErr := a.adapter.Logout(ctx)
	if serverErr != nil {
		a.logger.Warn().Err(serverErr).Msg("server logout failed")
	}
	if err := a.tokens.Clear(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) me(ctx context.Context, args []string) error {
	if err := exactArgs(args, 0); err != nil {
		return err
	}

	user, err := a.adapter.Me(ctx)
	if err != nil {
		return err
	}

	renderUser(a.out, user)
	return nil
}

func (a *App) brands(ctx context.Context, args []string) error {
	if err := exactArgs(args, 0); err != nil {
		return err
	}

	brands, err := a.adapter.ListBrands(ctx)
	if err != nil {
		return err
	}

	renderBrands(a.out, brands)
	return nil
}

func (a *App) brandAdd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: brand name is required", ErrUsage)
	}

	brand, err := a.adapter.CreateBrand(ctx, models.BrandRequest{Name: args[0], InitialFlavors: args[1:]})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Brand %q created with id %s.\n", brand.Name, brand.BrandID)
	return nil
}

func (a *App) brandDelete(ctx context.Context, args []string) error {
	if err := exactArgs(args, 1); err != nil {
		return err
	}

	message, err := a.adapter.DeleteBrand(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, message)
	return nil
}

func (a *App) flavorAdd(ctx context.Context, args []string) error {
	if err := exactArgs(args, 2); err != nil {
		return err
	}

	if err := a.adapter.AddFlavor(ctx, args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Flavor %q added to %s.\n", args[1], args[0])
	return nil
}

func (a *App) flavorRemove(ctx context.Context, args []string) error {
	if err := exactArgs(args, 2); err != nil {
		return err
	}

	if err := a.adapter.RemoveFlavor(ctx, args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Flavor %q removed from %s.\n", args[1], args[0])
	return nil
}

// logEntry records a seltzer. The brand name is looked up in the catalog;
// date and time default to now.
func (a *App) logEntry(ctx context.Context, args []string) error {
	now := a.now()

	fs := flag.NewFlagSet("log", flag.ContinueOnError)
	date := fs.String("date", now.Format("2006-01-02"), "date of the seltzer")
	clock := fs.String("time", now.Format("15:04"), "time of the seltzer")
	notes := fs.String("notes", "", "tasting notes")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := exactArgs(fs.Args(), 3); err != nil {
		return err
	}

	brandID, flavor := fs.Arg(0), fs.Arg(1)
	rating, err := strconv.Atoi(fs.Arg(2))
	if err != nil {
		return fmt.Errorf("%w: rating %q is not a number", ErrUsage, fs.Arg(2))
	}

	brand, err := a.findBrand(ctx, brandID)
	if err != nil {
		return err
	}

	entry, err := a.adapter.CreateEntry(ctx, models.EntryRequest{
		Brand:   brand.Name,
		BrandID: brand.BrandID,
		Flavor:  flavor,
		Rating:  models.Rating(rating),
		Date:    *date,
		Time:    *clock,
		Notes:   *notes,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged %s %s (%s) as %s.\n", entry.Brand, entry.Flavor, stars(entry.Rating), entry.EntryID)
	return nil
}

func (a *App) findBrand(ctx context.Context, brandID string) (models.Brand, error) {
	brands, err := a.adapter.ListBrands(ctx)
	if err != nil {
		return models.Brand{}, err
	}

	for _, b := range brands {
		if b.BrandID == brandID {
			return b, nil
		}
	}
	return models.Brand{}, fmt.Errorf("%w: %s", ErrUnknownBrand, brandID)
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	limit := fs.Int("limit", 0, "show at most n seltzers")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	entries, err := a.adapter.ListEntries(ctx, *limit)
	if err != nil {
		return err
	}

	renderEntries(a.out, entries)
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	if err := exactArgs(args, 1); err != nil {
		return err
	}

	entry, err := a.adapter.GetEntry(ctx, args[0])
	if err != nil {
		return err
	}

	renderEntries(a.out, []models.Entry{entry})
	return nil
}

// edit changes the rating or notes of an entry and keeps its other fields.
func (a *App) edit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	rating := fs.Int("rating", 0, "new rating")
	notes := fs.String("notes", "", "new tasting notes")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := exactArgs(fs.Args(), 1); err != nil {
		return err
	}

	entryID := fs.Arg(0)
	entry, err := a.adapter.GetEntry(ctx, entryID)
	if err != nil {
		return err
	}

	req := models.EntryRequest{
		Brand:    entry.Brand,
		BrandID:  entry.BrandID,
		Flavor:   entry.Flavor,
		FlavorID: entry.FlavorID,
		Rating:   models.Rating(entry.Rating),
		Date:     entry.Date,
		Time:     entry.Time,
		Notes:    entry.Notes,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rating":
			req.Rating = models.Rating(*rating)
		case "notes":
			req.Notes = *notes
		}
	})

	if err = a.adapter.UpdateEntry(ctx, entryID, req); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Seltzer %s updated.\n", entryID)
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	if err := exactArgs(args, 1); err != nil {
		return err
	}

	if err := a.adapter.DeleteEntry(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Seltzer %s deleted.\n", args[0])
	return nil
}

func (a *App) stats(ctx context.Context, args []string) error {
	if err := exactArgs(args, 0); err != nil {
		return err
	}

	stats, err := a.adapter.Stats(ctx)
	if err != nil {
		return err
	}

	renderStats(a.out, stats)
	return nil
}

func (a *App) search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	filter := fs.String("filter", string(models.SearchFilterAll), "fields to match: all, brand or flavor")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	entries, err := a.adapter.Search(ctx, strings.Join(fs.Args(), " "), models.ParseSearchFilter(*filter))
	if err != nil {
		return err
	}

	renderEntries(a.out, entries)
	return nil
}

func (a *App) version(ctx context.Context, args []string) error {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Server version: %s\n", version)
	return nil
}

func (a *App) health(ctx context.Context, args []string) error {
	health, err := a.adapter.Health(ctx)
	if err != nil && !errors.Is(err, adapter.ErrServiceUnavailable) {
		return err
	}

	status := "ok"
	if !health.OK {
		status = "unavailable"
	}
	fmt.Fprintf(a.out, "Server %s (version %s)\n", status, health.Version)
	return err
}
