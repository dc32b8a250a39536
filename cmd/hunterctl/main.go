package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	hunter "github.com/hunterio/client-go"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) < 1 {
		return errors.New("usage: hunterctl <command> [args]")
	}

	apiKey := os.Getenv("HUNTER_API_KEY")
	if apiKey == "" {
		return errors.New("HUNTER_API_KEY environment variable is required")
	}

	var opts []hunter.Option
	if baseURL := os.Getenv("HUNTER_BASE_URL"); baseURL != "" {
		opts = append(opts, hunter.WithBaseURL(baseURL))
	}

	client, err := hunter.New(apiKey, opts...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	switch args[0] {
	case "account":
		data, err := client.Account(ctx)
		if err != nil {
			return fmt.Errorf("fetch account: %w", err)
		}
		return encode(stdout, data)

	case "domain-search":
		if len(args) < 2 {
			return errors.New("usage: hunterctl domain-search <domain>")
		}
		data, err := client.DomainSearch(ctx, &hunter.DomainSearchParams{Domain: args[1]})
		if err != nil {
			return fmt.Errorf("search %s: %w", args[1], err)
		}
		return encode(stdout, data)

	case "email-count":
		if len(args) < 2 {
			return errors.New("usage: hunterctl email-count <domain>")
		}
		data, err := client.EmailCount(ctx, &hunter.EmailCountParams{Domain: args[1]})
		if err != nil {
			return fmt.Errorf("count %s: %w", args[1], err)
		}
		return encode(stdout, data)

	case "email-finder":
		if len(args) < 3 {
			return errors.New("usage: hunterctl email-finder <domain> <full name>")
		}
		email, score, err := client.EmailFinder(ctx, &hunter.EmailFinderParams{
			Domain:   args[1],
			FullName: strings.Join(args[2:], " "),
		})
		if err != nil {
			return fmt.Errorf("find address: %w", err)
		}
		return encode(stdout, map[string]any{"email": email, "score": score})

	case "email-verifier":
		if len(args) < 2 {
			return errors.New("usage: hunterctl email-verifier <email>")
		}
		data, err := client.EmailVerifier(ctx, args[1])
		if err != nil {
			return fmt.Errorf("verify %s: %w", args[1], err)
		}
		return encode(stdout, data)

	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
