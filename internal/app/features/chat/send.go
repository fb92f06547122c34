// internal/app/features/chat/send.go
package chat

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/reviewhub/internal/app/system/auth"
	"github.com/dalemusser/reviewhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
)

type sendInput struct {
	Text string `json:"text"`
}

// ServeSend handles POST /chat. The canned reply arrives after the
// configured delay; if the caller disconnects first the exchange is
// dropped.
func (h *Handler) ServeSend(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		respond.Unauthorized(w, "sign in required")
		return
	}

	var in sendInput
	if err := respond.Decode(r, &in); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}
	text := htmlsanitize.Text(in.Text)
	if strings.TrimSpace(text) == "" {
		respond.BadRequest(w, "text is required")
		return
	}

	if h.Delay > 0 {
		select {
		case <-time.After(h.Delay):
		case <-r.Context().Done():
			return
		}
	}

	botMsg := h.appendExchange(user.ID, text)
	respond.JSON(w, http.StatusOK, botMsg)
}

// ServeHistory handles GET /chat/history.
func (h *Handler) ServeHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		respond.Unauthorized(w, "sign in required")
		return
	}
	respond.JSON(w, http.StatusOK, h.history(user.ID))
}
