package handler

import (
	"log/slog"
	"net/http"
	"time"

	"studydeck/internal/httputil"
	"studydeck/internal/service"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second
	pingWait  = 30 * time.Second
)

// TodoHandler handles todo HTTP requests and the live websocket feed
type TodoHandler struct {
	todoService *service.TodoService
	upgrader    websocket.Upgrader
	logger      *slog.Logger
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoService *service.TodoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Cross-origin policy is already enforced by the CORS middleware
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// ListTodos returns the user's full todo list
// GET /api/todos
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todoService.ListTodos(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, todos)
}

// createTodoRequest is the add-item payload
type createTodoRequest struct {
	Text string `json:"text"`
}

// CreateTodo adds a todo item
// POST /api/todos
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.todoService.CreateTodo(r.Context(), httputil.GetUserID(r), req.Text)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, todo)
}

// UpdateTodo edits a todo's text and/or completed flag
// PATCH /api/todos/{id}
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Todo ID is required")
		return
	}

	var req service.UpdateTodoRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	todo, err := h.todoService.UpdateTodo(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, todo)
}

// DeleteTodo removes a todo item
// DELETE /api/todos/{id}
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Todo ID is required")
		return
	}

	if err := h.todoService.DeleteTodo(r.Context(), id, httputil.GetUserID(r)); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// watchMessage is one frame on the websocket feed: either the initial
// snapshot or a change event.
type watchMessage struct {
	Snapshot interface{} `json:"snapshot,omitempty"`
	Event    interface{} `json:"event,omitempty"`
}

// Watch upgrades to a websocket and streams todo changes until the client
// disconnects. The first frame is a snapshot of the whole list so the
// client can mirror state from a known point; the subscription opens before
// the snapshot is read so no mutation falls between the two.
// GET /api/todos/watch
func (h *TodoHandler) Watch(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	todos, events, cancel, err := h.todoService.Watch(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}
	defer cancel()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(watchMessage{Snapshot: todos}); err != nil {
		return
	}

	// Reader goroutine: we never expect frames from the client, but reading
	// is how gorilla surfaces close frames.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(pingWait)
	defer ping.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(watchMessage{Event: event}); err != nil {
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}
