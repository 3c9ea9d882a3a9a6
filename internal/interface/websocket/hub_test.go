package websocket

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"dsr-service/internal/domain/entity"
	"dsr-service/pkg/logger"
	"dsr-service/pkg/metrics"

	gws "github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	calls atomic.Int64
	fail  atomic.Bool
}

func (c *countingSource) Fetch(ctx context.Context, year string) (*entity.OverviewCounters, error) {
	n := c.calls.Add(1)
	if c.fail.Load() {
		return nil, errors.New("aggregate failed")
	}
	return &entity.OverviewCounters{TotalJobs: n, PendingJobs: int64(len(year))}, nil
}

func startHub(t *testing.T, source OverviewSource, interval time.Duration) (*Hub, string) {
	t.Helper()
	hub := NewHub(source, interval, metrics.NewMetrics("test", prometheus.NewRegistry()), logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *gws.Conn {
	t.Helper()
	conn, _, err := gws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *gws.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestSubscribeGetsInitThenUpdates(t *testing.T) {
	source := &countingSource{}
	_, url := startHub(t, source, 50*time.Millisecond)
	conn := dial(t, url)

	require.NoError(t, conn.WriteJSON(map[string]string{"year": "24-25"}))

	msg := readMessage(t, conn)
	assert.Equal(t, TypeInit, msg.Type)
	require.NotNil(t, msg.Data)
	assert.Equal(t, int64(1), msg.Data.TotalJobs)

	for i := 0; i < 2; i++ {
		msg = readMessage(t, conn)
		assert.Equal(t, TypeUpdate, msg.Type)
		require.NotNil(t, msg.Data)
	}
}

func TestMalformedMessageKeepsState(t *testing.T) {
	_, url := startHub(t, &countingSource{}, time.Hour)
	conn := dial(t, url)

	require.NoError(t, conn.WriteMessage(gws.TextMessage, []byte("not json")))
	msg := readMessage(t, conn)
	assert.Equal(t, TypeError, msg.Type)
	assert.NotEmpty(t, msg.Error)
	assert.Nil(t, msg.Data)

	require.NoError(t, conn.WriteJSON(map[string]string{"month": "May"}))
	msg = readMessage(t, conn)
	assert.Equal(t, TypeError, msg.Type)

	require.NoError(t, conn.WriteJSON(map[string]string{"year": "24-25"}))
	msg = readMessage(t, conn)
	assert.Equal(t, TypeInit, msg.Type)
}

func TestResubscribeSwitchesYear(t *testing.T) {
	hub, url := startHub(t, &countingSource{}, time.Hour)
	conn := dial(t, url)

	require.NoError(t, conn.WriteJSON(map[string]string{"year": "24-25"}))
	assert.Equal(t, TypeInit, readMessage(t, conn).Type)

	require.NoError(t, conn.WriteJSON(map[string]string{"year": "2025-26"}))
	msg := readMessage(t, conn)
	assert.Equal(t, TypeInit, msg.Type)
	assert.Equal(t, int64(len("2025-26")), msg.Data.PendingJobs)

	require.Eventually(t, func() bool {
		sessions := hub.Sessions()
		return len(sessions) == 1 && sessions[0].Year == "2025-26" && sessions[0].State == StateSubscribed
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFetchErrorIsReported(t *testing.T) {
	source := &countingSource{}
	source.fail.Store(true)
	_, url := startHub(t, source, time.Hour)
	conn := dial(t, url)

	require.NoError(t, conn.WriteJSON(map[string]string{"year": "24-25"}))
	msg := readMessage(t, conn)
	assert.Equal(t, TypeError, msg.Type)
	assert.Equal(t, "Failed to fetch overview", msg.Error)
}

func TestCloseRemovesSession(t *testing.T) {
	hub, url := startHub(t, &countingSource{}, time.Hour)
	conn := dial(t, url)

	require.Eventually(t, func() bool { return len(hub.Sessions()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, StateConnected, hub.Sessions()[0].State)

	conn.Close()
	require.Eventually(t, func() bool { return len(hub.Sessions()) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestSessionStateString(t *testing.T) {
	assert.Equal(t, "connected", StateConnected.String())
	assert.Equal(t, "subscribed", StateSubscribed.String())
}
