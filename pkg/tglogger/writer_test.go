package tglogger

import (
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_SendsOneMessagePerWrite(t *testing.T) {
	bot := &fakeBot{}
	s := newTestSession(bot, &recordingLogger{})
	w := NewWriter(s, Message{ParseMode: ParseModeHTML, DisableNotification: true})

	n, err := fmt.Fprint(w, "backup finished\n")

	require.NoError(t, err)
	assert.Equal(t, len("backup finished\n"), n)

	cfg := bot.lastMessage()
	assert.Equal(t, "backup finished", cfg.Text)
	assert.Equal(t, "HTML", cfg.ParseMode)
	assert.True(t, cfg.DisableNotification)
}

func TestWriter_SkipsBlankWrites(t *testing.T) {
	bot := &fakeBot{}
	w := NewWriter(newTestSession(bot, &recordingLogger{}), Message{})

	n, err := w.Write([]byte("  \n"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Zero(t, bot.sendCount())
}

func TestWriter_DeliveryFailureIsNotReturned(t *testing.T) {
	bot := &fakeBot{alwaysErr: errRemote}
	w := NewWriter(newTestSession(bot, &recordingLogger{}), Message{})

	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 1, bot.sendCount())
}

func TestWriter_InvalidTemplate(t *testing.T) {
	bot := &fakeBot{}
	w := NewWriter(newTestSession(bot, &recordingLogger{}), Message{ParseMode: "rst"})

	n, err := w.Write([]byte("hello"))

	assert.ErrorIs(t, err, ErrInvalidParseMode)
	assert.Zero(t, n)
	assert.Zero(t, bot.sendCount())
}

func TestWriter_AsStdlibLogOutput(t *testing.T) {
	bot := &fakeBot{}
	l := log.New(NewWriter(newTestSession(bot, &recordingLogger{}), Message{}), "[cron] ", 0)

	l.Printf("job %s failed", "cleanup")

	assert.Equal(t, "[cron] job cleanup failed", bot.lastMessage().Text)
}
