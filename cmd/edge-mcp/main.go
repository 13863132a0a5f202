package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/ironsheep/edge-tools-mcp/internal/server"
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
			fmt.Printf("edge-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("edge-tools-mcp - MCP server for grayscale and Sobel/Prewitt edge detection")
			fmt.Println()
			fmt.Println("Usage: edge-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  EDGE_MCP_LOG_LEVEL=debug     Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Logs go to stderr, stdout is for MCP protocol.
	flag.Parse()
	_ = flag.Set("logtostderr", "true")
	if os.Getenv("EDGE_MCP_LOG_LEVEL") == "debug" {
		_ = flag.Set("v", "1")
	}
	defer glog.Flush()

	glog.V(1).Infof("Edge MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)

	srv := server.New()
	if err := srv.Run(); err != nil {
		glog.Fatalf("Server error: %v", err)
	}
}
