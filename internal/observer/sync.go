package observer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type subscribeMessage struct {
	Type        string `json:"type"`
	LobbyID     string `json:"lobbyId"`
	AccessToken string `json:"accessToken"`
}

// Syncer держит websocket-соединение с сервером и переносит обновления в GameObserver.
type Syncer struct {
	URL        string
	Observer   *GameObserver
	RetryDelay time.Duration
	Dialer     *websocket.Dialer
	Logger     *log.Logger
}

// Run подключается и переподключается, пока ctx не отменён.
func (s *Syncer) Run(ctx context.Context) error {
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("sync")
	retry := s.RetryDelay
	if retry <= 0 {
		retry = time.Second
	}

	for {
		err := s.session(ctx, logger)
		if ctx.Err() != nil {
			return nil
		}
		logger.Warn("connection lost", "url", s.URL, "err", err, "retry", retry)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(retry):
		}
	}
}

// session обслуживает одно соединение до ошибки или отмены ctx.
func (s *Syncer) session(ctx context.Context, logger *log.Logger) error {
	dialer := s.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	conn, _, err := dialer.DialContext(ctx, s.URL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", s.URL, err)
	}
	defer conn.Close()
	logger.Info("connected", "url", s.URL)

	sub := subscribeMessage{Type: "subscribe", LobbyID: s.Observer.LobbyID(), AccessToken: s.Observer.AccessToken()}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(sub); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- s.readLoop(conn, logger)
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "client shutting down"))
			conn.Close()
			<-done
			return ctx.Err()
		case err := <-done:
			return err
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				conn.Close()
				<-done
				return fmt.Errorf("ping: %w", err)
			}
		}
	}
}

func (s *Syncer) readLoop(conn *websocket.Conn, logger *log.Logger) error {
	conn.SetReadLimit(MaxFrameSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return errors.New("server closed connection")
			}
			return fmt.Errorf("read: %w", err)
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		var u Update
		switch messageType {
		case websocket.TextMessage:
			u, err = DecodeText(data)
		case websocket.BinaryMessage:
			u, err = DecodeBinary(data)
		default:
			continue
		}
		if err != nil {
			logger.Warn("bad update", "err", err)
			continue
		}
		if !s.Observer.Apply(u) {
			logger.Debug("update ignored", "type", u.Type)
			continue
		}
		logger.Debug("update applied", "type", u.Type)
	}
}
