package bot_info

import "github.com/m04kA/SMC-TelegramLogger/pkg/tglogger"

// Session интерфейс сессии бота
type Session interface {
	Identity() (tglogger.Identity, bool)
	Destination() string
}
