package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/lmittmann/tint"

	"github.com/rubpy/crawly/clog"
	fyyur "github.com/rubpy/fyyur-client"
	"github.com/rubpy/fyyur-client/isotime"
)

//////////////////////////////////////////////////

const logHeader = "[example] "

var envFile = ".env"

//////////////////////////////////////////////////

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(os.Args) < 3 {
		printHelp()
		os.Exit(2)
	}

	cfg, err := LoadConfig(envFile)
	if err != nil {
		panic(fmt.Errorf("LoadConfig: %w", err))
	}

	logger := slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      cfg.LogLevel,
			TimeFormat: time.DateTime,
		}),
	)

	switch os.Args[1] {
	case "parse":
		style := ""
		if len(os.Args) > 3 {
			style = os.Args[3]
		}

		if err := runParse(os.Args[2], style); err != nil {
			logger.Error(logHeader+"parse", "err", err)
			os.Exit(1)
		}

	case "delete":
		if err := runDelete(ctx, cfg, logger, fyyur.VenueID(os.Args[2])); err != nil {
			os.Exit(1)
		}

	default:
		printHelp()
		os.Exit(2)
	}
}

func runParse(s string, styleName string) error {
	t, err := isotime.Parse(s)
	if err != nil {
		return fmt.Errorf("isotime.Parse: %w", err)
	}

	fmt.Println(isotime.Format(t))

	if styleName != "" {
		style, err := isotime.ParseStyle(styleName)
		if err != nil {
			return fmt.Errorf("isotime.ParseStyle: %w", err)
		}

		formatted, err := isotime.FormatStyle(t, style)
		if err != nil {
			return fmt.Errorf("isotime.FormatStyle: %w", err)
		}

		fmt.Println(formatted)
	}

	return nil
}

func runDelete(ctx context.Context, cfg *Config, logger *slog.Logger, id fyyur.VenueID) error {
	c, err := fyyur.NewClient(
		fyyur.WithLogger(logger),
		fyyur.WithBaseURL(cfg.BaseURL),
		fyyur.WithSettings(cfg.Settings()),
	)
	if err != nil {
		panic(fmt.Errorf("fyyur.NewClient: %w", err))
	}

	if cfg.Confirm {
		ok, err := confirm(fmt.Sprintf("Delete venue %s at %s? [y/N] ", string(id), cfg.BaseURL))
		if err != nil {
			return fmt.Errorf("confirm: %w", err)
		}

		if !ok {
			c.Log(ctx, clog.Params{
				Message: logHeader + "aborted",
				Level:   slog.LevelInfo,
			})

			return nil
		}
	}

	nav := fyyur.NavigatorFunc(func(ctx context.Context, target string) error {
		c.Log(ctx, clog.Params{
			Message: logHeader + "navigate",
			Level:   slog.LevelInfo,

			Values: clog.ParamGroup{
				"location": cfg.BaseURL + target,
			},
		})

		return nil
	})

	select {
	case out := <-c.Dispatch(ctx, id, nav):
		return out.Err

	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reads a single keypress; only 'y' or 'Y' confirms.
func confirm(prompt string) (bool, error) {
	fmt.Print(prompt)
	defer fmt.Println()

	char, key, err := keyboard.GetSingleKey()
	if err != nil {
		return false, err
	}

	if key == keyboard.KeyCtrlC || key == keyboard.KeyEsc {
		return false, errors.New("interrupted")
	}

	return char == 'y' || char == 'Y', nil
}

func printHelp() {
	fmt.Println("========================================")
	fmt.Println(" Usage:")
	fmt.Println("   example parse <timestamp> [medium|full]")
	fmt.Println("   example delete <venue-id>")

	fmt.Println("========================================")
	fmt.Println(" Environment (or " + envFile + "):")
	fmt.Println("   FYYUR_BASE_URL         --- server root (http://localhost:5000)")
	fmt.Println("   FYYUR_REQUEST_TIMEOUT  --- per-request bound (10s)")
	fmt.Println("   FYYUR_ESCAPE_VENUE_ID  --- percent-encode the ID (false)")
	fmt.Println("   FYYUR_REDIRECT_PATH    --- where to go after deleting (/)")
	fmt.Println("   FYYUR_LOG_LEVEL        --- debug, info, warn, error (info)")
	fmt.Println("   FYYUR_CONFIRM          --- ask before deleting (true)")

	fmt.Println("========================================")
	fmt.Println()
}
