package server

import (
	"encoding/json"
	"fmt"

	"github.com/golang/glog"
	"github.com/ironsheep/edge-tools-mcp/internal/edge"
	"github.com/ironsheep/edge-tools-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_edge_detect").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		glog.V(1).Infof("Tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging/edge function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Conversion
	case "image_grayscale":
		return s.handleImageGrayscale(args)

	// Edge Detection
	case "image_edge_detect":
		return s.handleImageEdgeDetect(args)
	case "image_edge_stats":
		return s.handleImageEdgeStats(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Shared argument helpers ===

// rectArgs is an explicit region; (X1,Y1) inclusive, (X2,Y2) exclusive.
type rectArgs struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// regionArgs selects the part of an image a tool works on. Rect wins over
// Region when both are given; neither means the whole image.
type regionArgs struct {
	Path   string    `json:"path"`
	Region string    `json:"region"`
	Rect   *rectArgs `json:"rect"`
}

// loadRegion loads the image at a.Path through the cache and applies the
// requested crop.
func (s *Server) loadRegion(a regionArgs) (imaging.PixelBuffer, error) {
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return imaging.PixelBuffer{}, err
	}
	switch {
	case a.Rect != nil:
		return imaging.Crop(buf, a.Rect.X1, a.Rect.Y1, a.Rect.X2, a.Rect.Y2)
	case a.Region != "":
		return imaging.CropRegion(buf, a.Region)
	}
	return buf, nil
}

// ImageResult is a processed image returned to the client as base64 PNG.
type ImageResult struct {
	// Width of the output image in pixels.
	Width int `json:"width"`

	// Height of the output image in pixels.
	Height int `json:"height"`

	// ImageBase64 is the image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

func newImageResult(buf imaging.PixelBuffer) (*ImageResult, error) {
	encoded, err := imaging.EncodePNGBase64(buf)
	if err != nil {
		return nil, err
	}
	return &ImageResult{
		Width:       buf.Width,
		Height:      buf.Height,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// === Conversion Handlers ===

func (s *Server) handleImageGrayscale(args json.RawMessage) (interface{}, error) {
	var a regionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.loadRegion(a)
	if err != nil {
		return nil, err
	}
	gray, err := imaging.Grayscale(buf)
	if err != nil {
		return nil, err
	}
	return newImageResult(gray)
}

// === Edge Detection Handlers ===

// defaultEdgeThreshold is the image_edge_stats cutoff when none is given.
const defaultEdgeThreshold = 100

type edgeArgs struct {
	regionArgs
	Operator string `json:"operator"`
	Boundary string `json:"boundary"`
}

// EdgeDetectResult contains an edge map encoded as base64 PNG.
//
// The image is single-channel; each pixel is the clamped gradient magnitude
// (0 = flat, 255 = strongest edge).
type EdgeDetectResult struct {
	ImageResult

	// Operator is the normalized operator name ("sobel" or "prewitt").
	Operator string `json:"operator"`

	// Boundary is the border policy used ("replicate" or "zero").
	Boundary string `json:"boundary"`

	// OutputPath is set when the edge map was also written to disk.
	OutputPath string `json:"output_path,omitempty"`
}

// detect runs the edge engine for the shared edge tool arguments.
func (s *Server) detect(a edgeArgs) (imaging.PixelBuffer, edge.Operator, edge.Boundary, error) {
	op, err := edge.ParseOperator(a.Operator)
	if err != nil {
		return imaging.PixelBuffer{}, 0, 0, err
	}
	boundary, err := edge.ParseBoundary(a.Boundary)
	if err != nil {
		return imaging.PixelBuffer{}, 0, 0, err
	}
	buf, err := s.loadRegion(a.regionArgs)
	if err != nil {
		return imaging.PixelBuffer{}, 0, 0, err
	}
	edges, err := edge.DetectOperator(buf, op, edge.Options{Boundary: boundary})
	if err != nil {
		return imaging.PixelBuffer{}, 0, 0, err
	}
	return edges, op, boundary, nil
}

type imageEdgeDetectArgs struct {
	edgeArgs
	OutputPath string `json:"output_path"`
}

func (s *Server) handleImageEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a imageEdgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	edges, op, boundary, err := s.detect(a.edgeArgs)
	if err != nil {
		return nil, err
	}

	if a.OutputPath != "" {
		if err := imaging.Save(a.OutputPath, edges); err != nil {
			return nil, err
		}
		glog.V(1).Infof("Saved edge map to %s", a.OutputPath)
	}

	img, err := newImageResult(edges)
	if err != nil {
		return nil, err
	}
	return &EdgeDetectResult{
		ImageResult: *img,
		Operator:    op.String(),
		Boundary:    boundary.String(),
		OutputPath:  a.OutputPath,
	}, nil
}

type imageEdgeStatsArgs struct {
	edgeArgs
	Threshold *int `json:"threshold"`
}

// EdgeStatsResult is the image_edge_stats response.
type EdgeStatsResult struct {
	edge.Stats
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Operator string `json:"operator"`
	Boundary string `json:"boundary"`
}

func (s *Server) handleImageEdgeStats(args json.RawMessage) (interface{}, error) {
	var a imageEdgeStatsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	threshold := defaultEdgeThreshold
	if a.Threshold != nil {
		threshold = *a.Threshold
	}
	if threshold < 0 || threshold > 255 {
		return nil, fmt.Errorf("threshold must be between 0 and 255, got %d", threshold)
	}

	edges, op, boundary, err := s.detect(a.edgeArgs)
	if err != nil {
		return nil, err
	}
	stats, err := edge.Summarize(edges, uint8(threshold))
	if err != nil {
		return nil, err
	}
	return &EdgeStatsResult{
		Stats:    stats,
		Width:    edges.Width,
		Height:   edges.Height,
		Operator: op.String(),
		Boundary: boundary.String(),
	}, nil
}
