// Package main implements the scrnctl CLI for manual operations against the
// screend HTTP server.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// serverURL is the base URL for the screend HTTP server
	serverURL string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scrnctl",
	Short: "CLI for screend HTTP server operations",
	Long: `scrnctl is a command-line interface for interacting with the screend HTTP server.
It provides commands for screening messages and checking server health.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:9180", "screend server URL")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(healthCmd)
}

// analyzeCmd screens a message from the argument, a file, or stdin
var analyzeCmd = &cobra.Command{
	Use:   "analyze [message]",
	Short: "Screen a message for clinical indicators",
	Long: `Screen a message using the screend server and print the full report as JSON.

Examples:
  # Screen a message directly
  scrnctl analyze "I can't stop checking the locks"

  # Screen from stdin
  echo "message text" | scrnctl analyze -

  # Use a different server
  scrnctl analyze --server http://localhost:8080 "message text"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

// healthCmd checks server health
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check screend server health",
	Long: `Check the health status of the screend HTTP server.

Examples:
  # Check health
  scrnctl health

  # Check health on a different server
  scrnctl health --server http://localhost:8080`,
	RunE: runHealth,
}

// AnalyzeRequest matches internal/http/server.go AnalyzeRequest
type AnalyzeRequest struct {
	Message string `json:"message"`
}

// HealthResponse matches internal/http/server.go HealthResponse
type HealthResponse struct {
	Status string `json:"status"`
}

// runAnalyze handles the analyze command
func runAnalyze(cmd *cobra.Command, args []string) error {
	var message string

	if len(args) == 0 || args[0] == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read from stdin: %w", err)
		}
		message = string(content)
	} else {
		message = args[0]
	}

	if message == "" {
		return fmt.Errorf("no message to analyze")
	}

	reqJSON, err := json.Marshal(AnalyzeRequest{Message: message})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/analyze", serverURL)
	httpReq, err := http.NewRequest("POST", url, bytes.NewReader(reqJSON))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("server returned status %d (failed to read response body: %w)", resp.StatusCode, readErr)
		}
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}

	// Pretty-print the report
	var report map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

// runHealth handles the health command
func runHealth(cmd *cobra.Command, args []string) error {
	url := fmt.Sprintf("%s/health", serverURL)

	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to connect to %s: %v\n", url, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("server returned status %d (failed to read response body: %w)", resp.StatusCode, readErr)
		}
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}

	var healthResp HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&healthResp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	fmt.Printf("Server Status: %s\n", healthResp.Status)
	fmt.Printf("Server URL: %s\n", serverURL)

	return nil
}
