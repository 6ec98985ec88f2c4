// Package tfbridge wires the vehicle frame-tree components together:
// configuration and profile resolution, the static frame set, the dynamic
// broadcaster and the convention pipelines, plus a small HTTP monitoring
// surface and a JSON-lines sample stream for replay and piping.
package tfbridge

import (
	"context"
	"fmt"
	"time"

	"github.com/underwave-robotics/tfbridge/broadcast"
	"github.com/underwave-robotics/tfbridge/config"
	"github.com/underwave-robotics/tfbridge/frames"
	"github.com/underwave-robotics/tfbridge/pipeline"
	"github.com/underwave-robotics/tfbridge/rig"
	"github.com/underwave-robotics/tfbridge/tfbuffer"
	"github.com/underwave-robotics/tfbridge/transform"
)

// Service is one vehicle's frame bridge. Construction resolves everything
// that can fail fatally (profile, static frame set) before any sample is
// accepted, so a half-initialized tree is never exposed.
type Service struct {
	Cfg     config.AppConfig
	Profile frames.Profile
	Catalog frames.Catalog

	Buffer      *tfbuffer.Buffer
	Static      *rig.StaticSet
	Broadcaster *broadcast.Broadcaster
	Poses       *pipeline.PosePipeline
	Twists      *pipeline.TwistPipeline

	started time.Time
}

// NewService resolves the vehicle profile and builds every component.
func NewService(cfg config.AppConfig) (*Service, error) {
	profile, err := config.ResolveProfile(cfg.Vehicle)
	if err != nil {
		return nil, fmt.Errorf("resolve vehicle profile: %w", err)
	}
	cat := frames.NewCatalog(profile)

	static, err := rig.NewStaticSet(profile, cat)
	if err != nil {
		return nil, fmt.Errorf("build static frame set: %w", err)
	}

	buf := tfbuffer.New()
	timeout := time.Duration(cfg.Lookup.TimeoutMS) * time.Millisecond
	return &Service{
		Cfg:         cfg,
		Profile:     profile,
		Catalog:     cat,
		Buffer:      buf,
		Static:      static,
		Broadcaster: broadcast.New(buf, cat),
		Poses:       pipeline.NewPosePipeline(buf, cat, timeout),
		Twists:      pipeline.NewTwistPipeline(buf, cat, frames.RoleBaseGroundTruth, timeout),
	}, nil
}

// Start publishes the static subtree as one batch. Call once, before
// feeding samples.
func (s *Service) Start() {
	s.Static.Broadcast(s.Buffer)
	s.started = time.Now()
}

// HandlePose processes one estimated body pose: republish the dynamic edge,
// then run the convention pipeline.
func (s *Service) HandlePose(ctx context.Context, p transform.Pose) (transform.Pose, error) {
	if _, err := s.Broadcaster.OnPoseSample(p); err != nil {
		return transform.Pose{}, err
	}
	return s.Poses.Process(ctx, p)
}

// HandleGroundTruth processes one ground-truth odometry sample: republish
// the ground-truth body edge, then rotate the twist into the body frame.
func (s *Service) HandleGroundTruth(ctx context.Context, p transform.Pose, tw transform.Twist) (transform.Twist, error) {
	if _, err := s.Broadcaster.OnGroundTruthSample(p); err != nil {
		return transform.Twist{}, err
	}
	return s.Twists.Process(ctx, tw)
}
