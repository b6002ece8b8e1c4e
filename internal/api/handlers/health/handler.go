package health

import (
	"net/http"

	"github.com/m04kA/SMC-TelegramLogger/internal/api/handlers"
)

// IdentityChecker сообщает, прошла ли проверка токена бота
type IdentityChecker interface {
	Verified() bool
}

type Handler struct {
	checker IdentityChecker
}

func NewHandler(checker IdentityChecker) *Handler {
	return &Handler{
		checker: checker,
	}
}

// Handle всегда отвечает 200: сервис работает и без подтверждённого токена,
// отправка в этом случае просто завершится ошибкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	telegram := "unverified"
	if h.checker.Verified() {
		telegram = "verified"
	}

	response := map[string]string{
		"status":   "healthy",
		"telegram": telegram,
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
