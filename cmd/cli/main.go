// Command alibi-cli carries the operational chores for an alibi deployment:
// probing health, inspecting resident sessions, and clearing state between
// test runs.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var serverURL string

func init() {
	// Best effort: deployments usually configure through real env vars.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:3000", "base URL of the alibi server")
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(resetCmd)
}

var rootCmd = &cobra.Command{
	Use:   "alibi-cli",
	Short: "Operational utilities for the alibi interrogation middleware",
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe the deployment's health endpoint",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd.Context(), http.MethodGet, "/health", nil)
	},
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List the resident interrogation sessions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd.Context(), http.MethodGet, "/debug/sessions", nil)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset [playerName]",
	Short: "Clear one session, or all sessions when no player is named",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := map[string]string{}
		if len(args) == 1 {
			payload["playerName"] = args[0]
		}
		body, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		return call(cmd.Context(), http.MethodPost, "/debug/reset-sessions", body)
	},
}

// call performs one request against the server and pretty-prints the JSON
// response. Non-2xx statuses become errors so scripts can rely on the exit
// code.
func call(ctx context.Context, method, path string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, serverURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var pretty bytes.Buffer
	if err = json.Indent(&pretty, raw, "", "  "); err != nil {
		pretty.Write(raw)
	}
	fmt.Println(pretty.String())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s returned %s", path, resp.Status)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
