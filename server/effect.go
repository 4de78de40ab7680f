package server

import (
	"encoding/json"
	"fmt"
	"github.com/clambin/ledsweep/sweep"
	log "github.com/sirupsen/logrus"
	"net/http"
)

// Settings are the strip's current effect and parameters
type Settings struct {
	ID         uint8  `json:"id"`
	Mode       string `json:"mode"`
	Speed      int    `json:"speed"`
	Intensity  int    `json:"intensity"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// EffectRequest changes the strip's settings. Omitted fields are left unchanged.
type EffectRequest struct {
	ID         *uint8  `json:"id,omitempty"`
	Mode       *string `json:"mode,omitempty"`
	Speed      *int    `json:"speed,omitempty"`
	Intensity  *int    `json:"intensity,omitempty"`
	Foreground *string `json:"foreground,omitempty"`
	Background *string `json:"background,omitempty"`
}

// Effect is a catalog entry
type Effect struct {
	ID       uint8  `json:"id"`
	Mode     string `json:"mode"`
	Metadata string `json:"metadata"`
}

func (server *Server) handleEffects(w http.ResponseWriter, _ *http.Request) {
	var effects []Effect
	for _, info := range sweep.Catalog() {
		effects = append(effects, Effect{ID: info.ID, Mode: info.Mode, Metadata: info.Metadata.String()})
	}
	writeJSON(w, effects)
}

func (server *Server) handleEffect(w http.ResponseWriter, req *http.Request) {
	if req.Method == http.MethodPost {
		var request EffectRequest
		err := json.NewDecoder(req.Body).Decode(&request)
		_ = req.Body.Close()
		if err == nil {
			err = server.apply(request)
		}
		if err != nil {
			log.WithError(err).Warning("failed to set effect")
			http.Error(w, "failed to set effect: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	writeJSON(w, server.settings())
}

func (server *Server) apply(request EffectRequest) error {
	params := server.Strip.Params()
	if request.Speed != nil {
		params.Speed = *request.Speed
	}
	if request.Intensity != nil {
		params.Intensity = *request.Intensity
	}
	var err error
	if request.Foreground != nil {
		if params.Foreground, err = sweep.ParseColor(*request.Foreground); err != nil {
			return fmt.Errorf("foreground: %w", err)
		}
	}
	if request.Background != nil {
		if params.Background, err = sweep.ParseColor(*request.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	if request.ID != nil {
		info, ok := sweep.Lookup(*request.ID)
		if !ok {
			return fmt.Errorf("invalid effect id: %d", *request.ID)
		}
		request.Mode = &info.Mode
	}
	if request.Mode != nil {
		if err = server.Strip.SetEffect(*request.Mode); err != nil {
			return err
		}
	}
	server.Strip.SetParams(params)
	log.WithFields(log.Fields{"mode": server.Strip.Mode(), "params": params}).Debug("/effect")
	return nil
}

func (server *Server) settings() Settings {
	params := server.Strip.Params()
	mode := server.Strip.Mode()
	info, _ := sweep.LookupMode(mode)
	return Settings{
		ID:         info.ID,
		Mode:       mode,
		Speed:      params.Speed,
		Intensity:  params.Intensity,
		Foreground: params.Foreground.Hex(),
		Background: params.Background.Hex(),
	}
}

func writeJSON(w http.ResponseWriter, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.WithError(err).Warning("failed to write response")
	}
}
