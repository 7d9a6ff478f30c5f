package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mmcdole/marquee/internal/adapter"
	"github.com/mmcdole/marquee/internal/adapter/source/omdb"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const setupAttempts = 3

func newSetupCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Store an OMDb API key in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := adapter.LoadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a := &app{cfg: cfg, configPath: *configPath, logger: adapter.NullLogger()}
			return runSetup(cmd, a)
		},
	}
}

// runSetup asks for an API key, checks it against the service and saves it
func runSetup(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Welcome to Marquee!")
	fmt.Fprintln(out, "An OMDb API key is required. Get a free one at https://www.omdbapi.com/apikey.aspx")
	fmt.Fprintln(out)

	reader := bufio.NewReader(cmd.InOrStdin())
	for attempt := 1; attempt <= setupAttempts; attempt++ {
		key, err := readAPIKey(out, reader)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if key == "" {
			fmt.Fprintln(out, "API key cannot be empty. Please try again.")
			continue
		}

		fmt.Fprint(out, "Checking key... ")
		if err := checkAPIKey(a, key); err != nil {
			fmt.Fprintf(out, "✗ %s\n\n", domain.UserMessage(err))
			if errors.Is(err, domain.ErrInvalidAPIKey) {
				continue
			}
			return err
		}
		fmt.Fprintln(out, "✓")

		a.cfg.OMDb.APIKey = key
		if err := adapter.SaveConfig(a.cfg, a.configPath); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintln(out, "✓ Configuration saved!")
		fmt.Fprintln(out)
		return nil
	}
	return fmt.Errorf("no valid API key after %d attempts", setupAttempts)
}

// readAPIKey reads the key without echo when stdin is a terminal
func readAPIKey(out io.Writer, reader *bufio.Reader) (string, error) {
	fmt.Fprint(out, "OMDb API key: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// checkAPIKey issues one cheap lookup. Only an authentication failure
// rejects the key; "not found" still proves it works.
func checkAPIKey(a *app, key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := omdb.NewClient(a.cfg.OMDb.BaseURL, key, a.logger, omdb.WithTimeout(a.cfg.OMDb.Timeout))
	_, err := client.Search(ctx, domain.SearchQuery{Term: "Batman", Page: 1})
	if err != nil && !errors.Is(err, domain.ErrNoResults) {
		return err
	}
	return nil
}
