package bot_info

import (
	"net/http"

	"github.com/m04kA/SMC-TelegramLogger/internal/api/handlers"
)

// BotInfoResponse данные бота и чата назначения. Токен не возвращается
type BotInfoResponse struct {
	Verified    bool   `json:"verified"`
	UserName    string `json:"username,omitempty"`
	ID          int64  `json:"id,omitempty"`
	Destination string `json:"chat_id"`
}

type Handler struct {
	session Session
}

func NewHandler(session Session) *Handler {
	return &Handler{
		session: session,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.session.Identity()

	handlers.RespondJSON(w, http.StatusOK, BotInfoResponse{
		Verified:    ok,
		UserName:    identity.UserName,
		ID:          identity.ID,
		Destination: h.session.Destination(),
	})
}
