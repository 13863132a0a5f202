// Package server implements the MCP (Model Context Protocol) server for the
// edge detection tools.
//
// This package provides a JSON-RPC 2.0 server that exposes grayscale
// conversion and Sobel/Prewitt edge detection through the MCP protocol, so
// MCP-compatible clients can inspect the structure of an image without
// handling pixel data themselves.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Conversion:
//   - image_grayscale: BT.601 grayscale as PNG
//
// Edge Detection:
//   - image_edge_detect: Sobel/Prewitt gradient magnitude map as PNG
//   - image_edge_stats: Max/mean magnitude and edge pixel count
//
// The grayscale and edge tools accept an optional named region or explicit
// rectangle to restrict processing to part of the image.
//
// # Image Caching
//
// The server keeps decoded pixel buffers in memory, keyed by path, for the
// lifetime of the process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string (e.g. "invalid edge detection operator: ...")
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    glog.Fatal(err)
//	}
package server
