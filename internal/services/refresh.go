package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"github.com/FayzulIslamFaisal/even-time-table/internal/dtos"
)

// RefreshService tells open board pages to re-render after a mutation.
// It performs no conflict detection: persistence stays last write
// wins, this only keeps stale tabs from lingering.
type RefreshService struct {
	logger *slog.Logger

	mu      sync.Mutex
	clients map[string]*boardClient
}

type boardClient struct {
	conn        *websocket.Conn
	connectedAt time.Time
}

func NewRefreshService(
	logger *slog.Logger,
	maxAge time.Duration,
) *RefreshService {
	service := &RefreshService{
		logger:  logger,
		clients: make(map[string]*boardClient),
	}

	service.startCleanup(5*time.Minute, maxAge) //nolint:mnd //time durations

	return service
}

// Subscribe registers a connected page and returns its id.
func (service *RefreshService) Subscribe(conn *websocket.Conn) string {
	service.mu.Lock()
	defer service.mu.Unlock()

	id := uuid.New().String()
	service.clients[id] = &boardClient{
		conn:        conn,
		connectedAt: time.Now(),
	}

	service.logger.Info("board client connected", slog.String("id", id))
	return id
}

func (service *RefreshService) Unsubscribe(id string) {
	service.mu.Lock()
	defer service.mu.Unlock()

	if _, exists := service.clients[id]; !exists {
		return
	}

	delete(service.clients, id)
	service.logger.Info("board client disconnected", slog.String("id", id))
}

// Broadcast notifies every connected page that the timetable changed.
// Unreachable clients are dropped, never retried.
func (service *RefreshService) Broadcast(ctx context.Context) {
	service.mu.Lock()
	defer service.mu.Unlock()

	msg := dtos.BoardMessage{Type: dtos.BoardRefresh}

	for id, client := range service.clients {
		if err := wsjson.Write(ctx, client.conn, msg); err != nil {
			service.logger.Warn(
				"dropping unreachable board client",
				slog.String("id", id),
			)
			delete(service.clients, id)
		}
	}
}

func (service *RefreshService) startCleanup(interval, maxAge time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			service.cleanupStaleClients(maxAge)
		}
	}()
}

func (service *RefreshService) cleanupStaleClients(maxAge time.Duration) {
	service.mu.Lock()
	defer service.mu.Unlock()

	now := time.Now()
	for id, client := range service.clients {
		if now.Sub(client.connectedAt) > maxAge {
			service.logger.Info(
				"closing stale board client",
				slog.String("id", id),
			)
			client.conn.Close(websocket.StatusNormalClosure, "client expired")
			delete(service.clients, id)
		}
	}
}
