// Package control implements the gRPC-facing DisplayControl service,
// routing mutating RPCs into the state hub and streaming its
// latest-value state updates to subscribers.
package control

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/kitonae/constellation/internal/controlpb"
	"github.com/kitonae/constellation/internal/statehub"
)

var logger = log.New(os.Stderr, "[control] ", log.LstdFlags)

// Server implements controlpb.DisplayControlServer.
type Server struct {
	controlpb.UnimplementedDisplayControlServer

	hub *statehub.Hub
}

// NewServer wraps a state hub.
func NewServer(hub *statehub.Hub) *Server {
	return &Server{hub: hub}
}

func ack(message string) *controlpb.Ack { return &controlpb.Ack{OK: true, Message: message} }

func nack(err error) (*controlpb.Ack, error) {
	return &controlpb.Ack{OK: false, Message: err.Error()}, nil
}

// LoadProject replaces the server's project wholesale.
func (s *Server) LoadProject(ctx context.Context, req *controlpb.LoadProjectRequest) (*controlpb.Ack, error) {
	if req.Project == nil {
		return nack(fmt.Errorf("load_project: project is required"))
	}
	s.hub.SetProject(req.Project)
	logger.Printf("loaded project %s", req.Project.ID)
	return ack(fmt.Sprintf("project %s loaded", req.Project.ID)), nil
}

// LoadScene is acknowledged but treated as a no-op in this core; scene
// replacement happens wholesale via LoadProject.
func (s *Server) LoadScene(ctx context.Context, req *controlpb.LoadSceneRequest) (*controlpb.Ack, error) {
	return ack("scene load acknowledged"), nil
}

// ActivateTimeline is acknowledged but treated as a no-op in this core;
// a project carries exactly one timeline, already active on load.
func (s *Server) ActivateTimeline(ctx context.Context, req *controlpb.ActivateTimelineRequest) (*controlpb.Ack, error) {
	return ack("timeline activation acknowledged"), nil
}

// Play starts the transport clock. An AtSeconds of exactly 0 means
// "unset, resume from current base_time", per the at_seconds==0
// convention.
func (s *Server) Play(ctx context.Context, req *controlpb.PlayRequest) (*controlpb.Ack, error) {
	if req.AtSeconds == 0 {
		s.hub.Play(nil)
	} else {
		at := req.AtSeconds
		s.hub.Play(&at)
	}
	return ack("playing"), nil
}

// Pause freezes the transport clock.
func (s *Server) Pause(ctx context.Context, req *controlpb.PauseRequest) (*controlpb.Ack, error) {
	s.hub.Pause()
	return ack("paused"), nil
}

// Stop resets the transport clock to t=0.
func (s *Server) Stop(ctx context.Context, req *controlpb.StopRequest) (*controlpb.Ack, error) {
	s.hub.Stop()
	return ack("stopped"), nil
}

// Seek jumps the transport clock to an arbitrary position.
func (s *Server) Seek(ctx context.Context, req *controlpb.SeekRequest) (*controlpb.Ack, error) {
	s.hub.Seek(req.ToSeconds)
	return ack(fmt.Sprintf("seeked to %.3fs", req.ToSeconds)), nil
}

// SetRate changes the transport clock's playback rate.
func (s *Server) SetRate(ctx context.Context, req *controlpb.SetRateRequest) (*controlpb.Ack, error) {
	s.hub.SetRate(req.Rate)
	return ack(fmt.Sprintf("rate set to %.3f", req.Rate)), nil
}

// SubscribeState streams the hub's latest-value StateUpdate to the
// caller until the stream's context is cancelled.
func (s *Server) SubscribeState(req *controlpb.SubscribeRequest, stream controlpb.DisplayControl_SubscribeStateServer) error {
	id, updates, unsubscribe, err := s.hub.Subscribe()
	if err != nil {
		return err
	}
	defer unsubscribe()
	logger.Printf("subscriber %s streaming (include_metrics=%v)", id, req.IncludeMetrics)

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			out := upd
			if !req.IncludeMetrics {
				out = &controlpb.StateUpdate{Transport: upd.Transport}
			}
			if err := stream.Send(out); err != nil {
				return err
			}
		}
	}
}
