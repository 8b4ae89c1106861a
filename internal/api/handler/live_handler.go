package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skyporter/luggage-tracking/internal/api/metrics"
	"github.com/skyporter/luggage-tracking/internal/core/ports"
	"github.com/skyporter/luggage-tracking/internal/core/service"
)

const writeTimeout = 10 * time.Second

// LiveHandler upgrades a request to a websocket and streams tracker snapshots
// for the requested contract. One Tracker session per connection; the session
// is torn down when the socket closes.
type LiveHandler struct {
	progress ports.ProgressService
	feed     ports.ContractFeed
	cfg      service.TrackerConfig
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

func NewLiveHandler(progress ports.ProgressService, feed ports.ContractFeed, cfg service.TrackerConfig, log zerolog.Logger) *LiveHandler {
	return &LiveHandler{
		progress: progress,
		feed:     feed,
		cfg:      cfg,
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The tracking stream is read-only public data per tracking number.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// liveRequest is a client-to-server control message.
type liveRequest struct {
	Action         string `json:"action"` // "refresh" or "track"
	TrackingNumber string `json:"tracking_number,omitempty"`
}

// liveResponse mirrors one TrackerSnapshot on the wire.
type liveResponse struct {
	State          string            `json:"state"`
	Reason         string            `json:"reason,omitempty"`
	TrackingNumber string            `json:"tracking_number,omitempty"`
	Result         *progressResponse `json:"result,omitempty"`
}

// Stream handles GET /v1/contracts/:tracking_number/live.
//
// @Summary      Stream live delivery progress over a websocket
// @Tags         tracking
// @Param        tracking_number  path  string  true  "Tracking number (e.g. LG-7A8B9C2D)"
// @Success      101  "switching protocols"
// @Router       /v1/contracts/{tracking_number}/live [get]
func (h *LiveHandler) Stream(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	metrics.LiveSessionsActive.Inc()
	defer metrics.LiveSessionsActive.Dec()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	tracker := service.NewTracker(h.progress, h.feed, h.cfg, h.log)
	tracker.Start(ctx)
	defer tracker.Close()

	tracker.SetTrackingNumber(c.Param("tracking_number"))

	// Reader: control messages until the peer disconnects.
	go func() {
		defer cancel()
		conn.SetReadLimit(1024)
		for {
			var req liveRequest
			if err := conn.ReadJSON(&req); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.log.Debug().Err(err).Msg("live session read error")
				}
				return
			}
			switch req.Action {
			case "refresh":
				tracker.Refresh()
			case "track":
				tracker.SetTrackingNumber(req.TrackingNumber)
			}
		}
	}()

	// Writer: every tracker state change goes to the peer.
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-tracker.Snapshots():
			if !ok {
				return nil
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(toLiveResponse(snap)); err != nil {
				return nil
			}
		}
	}
}

func toLiveResponse(snap service.TrackerSnapshot) liveResponse {
	resp := liveResponse{
		State:          string(snap.State),
		Reason:         string(snap.Reason),
		TrackingNumber: snap.TrackingNumber,
	}
	if snap.Result != nil {
		body := toProgressResponse(snap.Result)
		resp.Result = &body
	}
	return resp
}
