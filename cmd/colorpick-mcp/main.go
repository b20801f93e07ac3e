package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ironsheep/colorpick-mcp/internal/config"
	"github.com/ironsheep/colorpick-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("colorpick-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("colorpick-mcp - MCP server for picking and converting image colors")
			fmt.Println()
			fmt.Println("Usage: colorpick-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  COLORPICK_CONFIG=<path>      TOML settings file")
			fmt.Println("  COLORPICK_LOG_LEVEL=debug    Log level (debug, info, warn, error)")
			fmt.Println("  COLORPICK_RGBA=true          Show alpha in the RGB read-out")
			fmt.Println("  COLORPICK_HEXA=true          Show alpha in the HEX read-out")
			fmt.Println("  COLORPICK_HSLA=true          Show alpha in the HSL read-out")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Logging goes to stderr; stdout is for MCP protocol
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		With().Timestamp().Logger()

	cfg, err := config.Load(os.Getenv(config.EnvConfigPath))
	if err == nil {
		err = cfg.ApplyEnv(os.LookupEnv)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	logger = logger.Level(cfg.Level())
	logger.Debug().
		Str("version", Version).
		Str("built", BuildTime).
		Str("commit", GitCommit).
		Interface("color_picker", cfg.Picker).
		Msg("colorpick-mcp starting")

	srv := server.New(cfg, server.WithLogger(logger), server.WithVersion(Version))
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
