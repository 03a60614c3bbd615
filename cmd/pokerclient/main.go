package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ryan-northplay/poker-client/internal/config"
	"github.com/ryan-northplay/poker-client/internal/session"
	"github.com/ryan-northplay/poker-client/internal/state"
	"github.com/ryan-northplay/poker-client/internal/view"
)

func main() {
	tableFlag := flag.String("table", "", "table name to join")
	seatFlag := flag.String("seat", "", "seat token to resume (requires -table)")
	createFlag := flag.Bool("create", false, "create a new table interactively")
	flag.Parse()

	cfg := config.Load()

	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	pterm.DefaultLogger.Level = ptermLevel(cfg.LogLevel)
	logger := slog.New(handler)
	slog.SetDefault(logger)

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oker", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}

	locator := newLocator(cfg, *tableFlag, *seatFlag)

	store := state.NewStore(locator, logger)
	mgr := session.NewManager(store, session.Options{
		WSURL:   cfg.WSURL,
		HTTPURL: cfg.HTTPURL,
		Logger:  logger,
	})

	ctx := context.Background()
	mgr.Connect(ctx)

	if !waitConnected(mgr, 10*time.Second) {
		pterm.Error.Println("could not reach the table server")
		os.Exit(1)
	}
	pterm.Success.Printfln("connected to %s", cfg.WSURL)

	if *createFlag {
		mgr.CreateTable(promptCreateTable())
	}

	snapshots, cancel := store.Subscribe()
	defer cancel()
	go func() {
		for table := range snapshots {
			renderTable(table)
		}
	}()

	runPrompt(mgr, store)
	_ = mgr.Close()
}

// newLocator builds the session path source: file-backed when
// configured, seeded from flags when given.
func newLocator(cfg *config.Config, tableName, seatToken string) state.Locator {
	var locator state.Locator
	if cfg.SessionFile != "" {
		locator = state.NewFileLocator(cfg.SessionFile)
	} else {
		locator = state.NewMemoryLocator("/")
	}
	switch {
	case tableName != "" && seatToken != "":
		locator.Rewrite(state.SessionPath(tableName, seatToken))
	case tableName != "":
		locator.Rewrite("/" + tableName)
	}
	return locator
}

func waitConnected(mgr *session.Manager, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		switch mgr.Status() {
		case session.StatusConnected:
			return true
		case session.StatusDisconnected:
			return false
		}
		time.Sleep(50 * time.Millisecond)
	}
	return false
}

func promptCreateTable() session.CreateTableOptions {
	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Table name").Show()
	seats, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Number of players").WithDefaultValue("5").Show()
	chips, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Starting chip count").WithDefaultValue("100").Show()
	blind, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Small blind").WithDefaultValue("1").Show()
	highlight, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Highlight relevant cards?").Show()

	return session.CreateTableOptions{
		TableName:              strings.TrimSpace(name),
		NumberOfSeats:          atoiOr(seats, 5),
		StartingChipCount:      atoiOr(chips, 100),
		SmallBlind:             atoiOr(blind, 1),
		HighlightRelevantCards: highlight,
	}
}

// runPrompt reads one command at a time and forwards it to the manager.
// Eligibility gating mirrors what the seat buttons do: ineligible
// actions are refused locally instead of being sent.
func runPrompt(mgr *session.Manager, store *state.Store) {
	help := "commands: start | deal | bet <chips> | call | check | fold | name | table | quit"
	pterm.Info.Println(help)

	for {
		input, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(">").Show()
		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}

		table := store.Table()
		switch fields[0] {
		case "quit", "exit":
			return
		case "table":
			renderTable(table)
		case "start":
			mgr.StartGame()
		case "name":
			mgr.ChangeDisplayName()
		case "deal":
			if table == nil {
				pterm.Warning.Println("no table yet")
				continue
			}
			if seat, ok := table.CurrentSeat(); !ok || !view.CanDeal(table, seat) {
				pterm.Warning.Println("you cannot deal right now")
				continue
			}
			mgr.Deal()
		case "bet":
			if len(fields) < 2 {
				pterm.Warning.Println("usage: bet <chips>")
				continue
			}
			chips, err := strconv.Atoi(fields[1])
			if err != nil || chips <= 0 {
				pterm.Warning.Println("bet takes a positive chip count")
				continue
			}
			if !canActNow(store) {
				continue
			}
			mgr.PlaceBet(chips)
		case "call":
			if !canActNow(store) {
				continue
			}
			mgr.Call()
		case "check":
			if !canActNow(store) {
				continue
			}
			mgr.Check()
		case "fold":
			if !canActNow(store) {
				continue
			}
			mgr.Fold()
		default:
			pterm.Info.Println(help)
		}
	}
}

func canActNow(store *state.Store) bool {
	table := store.Table()
	if table == nil {
		pterm.Warning.Println("no table yet")
		return false
	}
	seat, ok := table.CurrentSeat()
	if !ok || !view.CanBet(table, seat) {
		pterm.Warning.Println("it is not your turn to bet")
		return false
	}
	return true
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l >= slog.LevelError:
		return pterm.LogLevelError
	case l >= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelInfo
	}
}
