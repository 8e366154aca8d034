package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-editor-mcp/internal/clipboard"
	"github.com/ironsheep/image-editor-mcp/internal/config"
	"github.com/ironsheep/image-editor-mcp/internal/raster"
	"github.com/ironsheep/image-editor-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "You must specify the name of an image file")
		fmt.Fprintln(os.Stderr, "Usage: image-editor-mcp <image file>")
		os.Exit(2)
	}

	// Handle --version and -v flags
	switch os.Args[1] {
	case "--version", "-v", "version":
		fmt.Printf("image-editor-mcp %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	case "--help", "-h", "help":
		fmt.Println("image-editor-mcp - MCP server for selecting, copying and pasting image regions")
		fmt.Println()
		fmt.Println("Usage: image-editor-mcp [options] <image file>")
		fmt.Println()
		fmt.Println("Options:")
		fmt.Println("  --version, -v    Print version information")
		fmt.Println("  --help, -h       Print this help message")
		fmt.Println()
		fmt.Println("Environment variables:")
		fmt.Println("  IMAGE_EDITOR_LOG_LEVEL=debug      Enable debug logging")
		fmt.Println("  IMAGE_EDITOR_CLIPBOARD=system     Share regions through the desktop clipboard (default: memory)")
		fmt.Println("  IMAGE_EDITOR_EXPORT_FORMAT=png    Format written by save: jpeg, png, bmp (default: jpeg)")
		fmt.Println("  IMAGE_EDITOR_JPEG_QUALITY=75      JPEG quality 1-100 (default: 90)")
		fmt.Println()
		fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
		fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
		return
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	enc, err := cfg.Encoder()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	path := os.Args[1]
	buf, err := raster.Load(path)
	if err != nil {
		log.Fatalf("Cannot open %s: %v", path, err)
	}

	var bridge clipboard.Bridge = clipboard.Shared()
	if cfg.Clipboard == config.ClipboardSystem {
		if !clipboard.SystemClipboardAvailable() {
			log.Fatalf("System clipboard requested but no clipboard utility is available")
		}
		bridge = clipboard.NewSystemBridge(enc)
	}

	var logger *log.Logger
	if cfg.Debug {
		logger = log.New(os.Stderr, "editor: ", log.Ldate|log.Ltime|log.Lshortfile)
		log.Printf("Image Editor MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Editing %s (%dx%d), clipboard=%s, export=%s", path, buf.Width(), buf.Height(), cfg.Clipboard, enc.MimeType)
	}

	srv := server.New(buf, server.Options{
		Bridge:  bridge,
		Encoder: enc,
		Logger:  logger,
	})
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
