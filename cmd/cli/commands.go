package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(addPlayerCmd)
	rootCmd.AddCommand(renamePlayerCmd)
	rootCmd.AddCommand(deletePlayerCmd)
	rootCmd.AddCommand(deleteStatCmd)
	rootCmd.AddCommand(deleteGameCmd)
	rootCmd.AddCommand(deleteGamesCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(cmd.OutOrStdout(), "/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(cmd.OutOrStdout(), "/api/players")
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show every player's lifetime totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(cmd.OutOrStdout(), "/api/dashboard")
	},
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List known games, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(cmd.OutOrStdout(), "/games")
	},
}

var playerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Show a player's per-game stats and totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
			return fmt.Errorf("invalid player id %q", args[0])
		}
		return performGetRequest(cmd.OutOrStdout(), "/player/"+args[0])
	},
}

var submitCmd = &cobra.Command{
	Use:   "submit <file>",
	Short: "Submit a game stat sheet from a JSON file ('-' reads stdin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var body []byte
		var err error
		if args[0] == "-" {
			body, err = io.ReadAll(cmd.InOrStdin())
		} else {
			body, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to read stat sheet: %w", err)
		}
		return performRequest(cmd.OutOrStdout(), http.MethodPost, "/save_game_stats", "application/json", bytes.NewReader(body))
	},
}

var addPlayerCmd = &cobra.Command{
	Use:   "add-player <number> <name>",
	Short: "Add a player to the roster",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid jersey number %q", args[0])
		}
		return performPostForm(cmd.OutOrStdout(), "/api/players", url.Values{"number": {args[0]}, "name": {args[1]}})
	},
}

var renamePlayerCmd = &cobra.Command{
	Use:   "rename-player <id> <name>",
	Short: "Change a player's name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
			return fmt.Errorf("invalid player id %q", args[0])
		}
		return performPostForm(cmd.OutOrStdout(), "/player/"+args[0]+"/rename", url.Values{"name": {args[1]}})
	},
}

var deletePlayerCmd = &cobra.Command{
	Use:   "delete-player <id>",
	Short: "Remove a player and every stat recorded for them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
			return fmt.Errorf("invalid player id %q", args[0])
		}
		return performRequest(cmd.OutOrStdout(), http.MethodPost, "/delete_player/"+args[0], "", nil)
	},
}

var deleteStatCmd = &cobra.Command{
	Use:   "delete-stat <id>",
	Short: "Delete a single player's stats for one game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
			return fmt.Errorf("invalid stat id %q", args[0])
		}
		return performRequest(cmd.OutOrStdout(), http.MethodPost, "/delete_stat/"+args[0], "", nil)
	},
}

var deleteGameCmd = &cobra.Command{
	Use:   "delete-game <date>",
	Short: "Delete a game and every stat recorded for it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostForm(cmd.OutOrStdout(), "/delete_game", url.Values{"date": {args[0]}})
	},
}

var deleteGamesCmd = &cobra.Command{
	Use:   "delete-games <date>...",
	Short: "Delete several games at once",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostForm(cmd.OutOrStdout(), "/delete_games_bulk", url.Values{"dates": args})
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(cmd.OutOrStdout(), "/metrics")
	},
}

// client does not follow redirects so the delete commands show where the server sent them.
var client = &http.Client{
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

func performGetRequest(out io.Writer, endpoint string) error {
	return performRequest(out, http.MethodGet, endpoint, "", nil)
}

func performPostForm(out io.Writer, endpoint string, form url.Values) error {
	return performRequest(out, http.MethodPost, endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

func performRequest(out io.Writer, method, endpoint, contentType string, body io.Reader) error {
	target := host + endpoint
	fmt.Fprintf(out, "Making %s request to %s\n", method, target)

	req, err := http.NewRequest(method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Fprintf(out, "Status Code: %d\n", resp.StatusCode)
	if loc := resp.Header.Get("Location"); loc != "" {
		fmt.Fprintf(out, "Redirected to: %s\n", loc)
	}
	if len(respBody) > 0 {
		fmt.Fprintln(out, "Response Body:")
		fmt.Fprintln(out, string(respBody))
	}

	return nil
}
