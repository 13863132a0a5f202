package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var operatorProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"sobel", "prewitt"},
	"description": "Edge operator: sobel or prewitt (case-insensitive)",
}

var boundaryProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"replicate", "zero"},
	"description": "Border handling: replicate computes border pixels from replicated neighbors, zero leaves them black. Default replicate",
	"default":     "replicate",
}

var regionProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"top-left", "top-right", "bottom-left", "bottom-right", "top-half", "bottom-half", "left-half", "right-half", "center"},
	"description": "Optional named region to process instead of the whole image",
}

var rectProperty = map[string]interface{}{
	"type":        "object",
	"description": "Optional rectangle to process instead of the whole image; (x1,y1) inclusive, (x2,y2) exclusive",
	"properties": map[string]interface{}{
		"x1": map[string]interface{}{"type": "integer"},
		"y1": map[string]interface{}{"type": "integer"},
		"x2": map[string]interface{}{"type": "integer"},
		"y2": map[string]interface{}{"type": "integer"},
	},
	"required": []string{"x1", "y1", "x2", "y2"},
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, channel count and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Conversion
		{
			Name:        "image_grayscale",
			Description: "Convert an image to 8-bit grayscale using BT.601 luminance weights and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty,
					"region": regionProperty,
					"rect":   rectProperty,
				},
				"required": []string{"path"},
			},
		},

		// Edge Detection
		{
			Name:        "image_edge_detect",
			Description: "Compute a gradient-magnitude edge map with the Sobel or Prewitt operator. Bright pixels mark strong intensity changes. Returns a grayscale PNG of the same size as the input (or region).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":     pathProperty,
					"operator": operatorProperty,
					"boundary": boundaryProperty,
					"region":   regionProperty,
					"rect":     rectProperty,
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file path to also write the edge map to (.png, .jpg or .bmp)",
					},
				},
				"required": []string{"path", "operator"},
			},
		},
		{
			Name:        "image_edge_stats",
			Description: "Summarize the edge map of an image: strongest and mean gradient magnitude and how many pixels reach a threshold. Useful to judge how busy or flat an area is without transferring an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":     pathProperty,
					"operator": operatorProperty,
					"boundary": boundaryProperty,
					"region":   regionProperty,
					"rect":     rectProperty,
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Magnitude (0-255) at or above which a pixel counts as an edge. Default 100",
						"default":     defaultEdgeThreshold,
					},
				},
				"required": []string{"path", "operator"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
