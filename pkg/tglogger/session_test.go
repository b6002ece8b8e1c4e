package tglogger

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_StoresIdentity(t *testing.T) {
	bot := &fakeBot{me: tgbotapi.User{ID: 7, UserName: "alerts_bot", IsBot: true}}
	log := &recordingLogger{}

	s := NewSession(bot, "100500", WithLogger(log))

	identity, ok := s.Identity()
	require.True(t, ok)
	assert.True(t, s.Verified())
	assert.Equal(t, Identity{UserName: "alerts_bot", ID: 7}, identity)
	assert.Equal(t, 1, bot.getMeCalls)
	assert.Equal(t, []string{"alerts_bot (id7) successfully created"}, log.infos)
	assert.Empty(t, log.errs)
	assert.Zero(t, bot.sendCount())
}

func TestNewSession_InvalidCredential(t *testing.T) {
	bot := &fakeBot{meErr: &tgbotapi.Error{Code: 401, Message: "Unauthorized"}}
	log := &recordingLogger{}

	s := NewSession(bot, "100500", WithLogger(log))

	require.NotNil(t, s)
	_, ok := s.Identity()
	assert.False(t, ok)
	assert.False(t, s.Verified())
	assert.Equal(t, 1, bot.getMeCalls)
	require.Len(t, log.errs, 1)
	assert.Contains(t, log.errs[0], "Unauthorized")
	assert.Empty(t, log.infos)
}

func TestSession_String(t *testing.T) {
	log := &recordingLogger{}

	verified := NewSession(&fakeBot{me: tgbotapi.User{ID: 7, UserName: "alerts_bot"}}, "@ops", WithLogger(log))
	assert.Equal(t, "Session. Bot name: alerts_bot. Bot id: 7. Chat id: @ops", verified.String())

	unverified := NewSession(&fakeBot{meErr: errRemote}, "100500", WithLogger(log))
	assert.Equal(t, "Session. Bot name: <unknown>. Bot id: <unknown>. Chat id: 100500", unverified.String())
}

func TestSession_Destination(t *testing.T) {
	tests := []struct {
		name            string
		destination     string
		wantChatID      int64
		wantChannelName string
	}{
		{name: "private chat", destination: "100500", wantChatID: 100500},
		{name: "supergroup", destination: "-1001234567890", wantChatID: -1001234567890},
		{name: "public channel", destination: "@ops_alerts", wantChannelName: "@ops_alerts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(&fakeBot{}, tt.destination, WithLogger(&recordingLogger{}))
			assert.Equal(t, tt.destination, s.Destination())

			cfg := s.newMessageConfig(Message{Text: "hi"})
			assert.Equal(t, tt.wantChatID, cfg.ChatID)
			assert.Equal(t, tt.wantChannelName, cfg.ChannelUsername)
			assert.Equal(t, "hi", cfg.Text)
		})
	}
}

func TestWithRetryInterval_NegativeIsZero(t *testing.T) {
	s := NewSession(&fakeBot{}, "1", WithLogger(&recordingLogger{}), WithRetryInterval(-5))
	assert.Zero(t, s.retryInterval)
}
