package tfbridge

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status          string `json:"status"`
	Vehicle         string `json:"vehicle"`
	VehicleType     string `json:"vehicle_type"`
	StaticEdges     int    `json:"static_edges"`
	EdgesPublished  uint64 `json:"edges_published"`
	SamplesRejected uint64 `json:"samples_rejected"`
	PosesConverted  uint64 `json:"poses_converted"`
	PosesDropped    uint64 `json:"poses_dropped"`
	TwistsConverted uint64 `json:"twists_converted"`
	TwistsDropped   uint64 `json:"twists_dropped"`
	LastPoseEpoch   int64  `json:"last_pose_epoch"`
	LastTwistEpoch  int64  `json:"last_twist_epoch"`
}

// handleHealth reports the drop counters that stand in for a push-style
// health signal: operators alert on dropped-versus-converted ratios.
func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:          "ok",
		Vehicle:         s.Profile.Name,
		VehicleType:     string(s.Profile.Type),
		StaticEdges:     len(s.Static.Edges()),
		EdgesPublished:  s.Broadcaster.Published(),
		SamplesRejected: s.Broadcaster.Rejected(),
		PosesConverted:  s.Poses.Stats.Converted(),
		PosesDropped:    s.Poses.Stats.Dropped(),
		TwistsConverted: s.Twists.Stats.Converted(),
		TwistsDropped:   s.Twists.Stats.Dropped(),
	}
	if t := s.Poses.Stats.LastStamp(); !t.IsZero() {
		resp.LastPoseEpoch = t.Unix()
	}
	if t := s.Twists.Stats.LastStamp(); !t.IsZero() {
		resp.LastTwistEpoch = t.Unix()
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// handleState dumps the live frame graph for debugging.
func (s *Service) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	edges := s.Buffer.Edges()
	out := make([]edgeJSON, 0, len(edges))
	for _, e := range edges {
		out = append(out, encodeEdge(e))
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"edges": out})
}
