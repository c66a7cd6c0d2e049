// Package main provides the excelparse command line entry point.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/elvenok1/excel-phyton-analize/config"
	"github.com/elvenok1/excel-phyton-analize/pkg/excelparse"
	"github.com/elvenok1/excel-phyton-analize/server"
)

var (
	cfgPath  string
	addr     string
	logLevel string

	outputPath string
	pretty     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "excelparse",
		Short: "Excel workbook extraction service and CLI",
		Long: `excelparse exposes xlsx workbooks as structured JSON: cell grids with
normalized styles, merged ranges, conditional formats, and charts. It runs
as an HTTP service or extracts a single file from the command line.`,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP extraction service",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&cfgPath, "config", "", "Path to YAML config file")
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	extractCmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Extract a workbook to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(serveCmd, extractCmd)
	return rootCmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, log).Run(ctx)
}

func runExtract(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	jsonData, err := extractJSON(data, pretty)
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

// extractJSON runs the extraction pipeline over workbook bytes and encodes
// the snapshot, producing the same JSON the /parse-excel endpoint serves for
// an upload of those bytes.
func extractJSON(data []byte, indent bool) ([]byte, error) {
	wb, err := excelparse.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	var jsonData []byte
	if indent {
		jsonData, err = json.MarshalIndent(wb, "", "  ")
	} else {
		jsonData, err = json.Marshal(wb)
	}
	if err != nil {
		return nil, fmt.Errorf("serialization failed: %w", err)
	}
	return jsonData, nil
}
