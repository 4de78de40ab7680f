package server

import (
	"github.com/clambin/ledsweep/strip"
	"net/http"
)

// Frame is the JSON representation of a rendered frame
type Frame struct {
	Mode   string   `json:"mode"`
	Phase  string   `json:"phase"`
	TimeMS int64    `json:"time_ms"`
	Pixels []string `json:"pixels"`
}

func makeFrame(frame strip.Frame) Frame {
	pixels := make([]string, len(frame.Pixels))
	for i, pixel := range frame.Pixels {
		pixels[i] = pixel.Hex()
	}
	return Frame{
		Mode:   frame.Mode,
		Phase:  frame.Phase.String(),
		TimeMS: frame.Time.Milliseconds(),
		Pixels: pixels,
	}
}

func (server *Server) handleFrame(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, makeFrame(server.Strip.Last()))
}
