package telegram

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/edgard/shopbot/internal/bot/handlers"
	"github.com/edgard/shopbot/internal/config"
	"github.com/edgard/shopbot/internal/telegram/telegramtest"
)

type mockProfileClient struct {
	mock.Mock
}

func (m *mockProfileClient) SetMyDescription(ctx context.Context, params *bot.SetMyDescriptionParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *mockProfileClient) SetMyCommands(ctx context.Context, params *bot.SetMyCommandsParams) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func testCommands(log *slog.Logger, content *config.Content) []handlers.Command {
	return handlers.RegisterAllCommands(handlers.HandlerDeps{Logger: log, Content: content})
}

func TestSyncProfile(t *testing.T) {
	content := config.DefaultContent
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	cmds := testCommands(log, &content)

	t.Run("pushes description then commands", func(t *testing.T) {
		client := &mockProfileClient{}
		client.On("SetMyDescription", mock.Anything, &bot.SetMyDescriptionParams{Description: content.Description}).
			Return(true, nil).Once()
		client.On("SetMyCommands", mock.Anything, &bot.SetMyCommandsParams{Commands: []models.BotCommand{
			{Command: "start", Description: content.StartCommand},
			{Command: "shop", Description: content.ShopCommand},
		}}).Return(true, nil).Once()

		require.NoError(t, SyncProfile(context.Background(), client, log, &content, cmds))
		client.AssertExpectations(t)
	})

	t.Run("description failure still pushes commands", func(t *testing.T) {
		var buf bytes.Buffer
		client := &mockProfileClient{}
		client.On("SetMyDescription", mock.Anything, mock.Anything).Return(false, errors.New("too many requests")).Once()
		client.On("SetMyCommands", mock.Anything, mock.Anything).Return(true, nil).Once()

		err := SyncProfile(context.Background(), client, slog.New(slog.NewTextHandler(&buf, nil)), &content, cmds)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "set description")
		assert.NotContains(t, err.Error(), "set commands")
		assert.Empty(t, buf.String(), "failures are reported to the caller, not logged")
		client.AssertExpectations(t)
	})

	t.Run("both failures are joined", func(t *testing.T) {
		client := &mockProfileClient{}
		client.On("SetMyDescription", mock.Anything, mock.Anything).Return(false, errors.New("a")).Once()
		client.On("SetMyCommands", mock.Anything, mock.Anything).Return(false, errors.New("b")).Once()

		err := SyncProfile(context.Background(), client, log, &content, cmds)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "set description")
		assert.Contains(t, err.Error(), "set commands")
	})
}

func TestSyncProfileOverHTTP(t *testing.T) {
	server := telegramtest.NewServer(t)
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	b, err := NewTelegramBot(testConfig(server.URL), log)
	require.NoError(t, err)

	content := config.DefaultContent
	require.NoError(t, SyncProfile(context.Background(), b, log, &content, testCommands(log, &content)))

	desc := server.Calls("setMyDescription")
	require.Len(t, desc, 1)
	assert.Equal(t, content.Description, formString(desc[0], "description"))

	cmds := server.Calls("setMyCommands")
	require.Len(t, cmds, 1)
	raw := cmds[0].Form.Get("commands")
	assert.True(t, strings.Contains(raw, `"command":"start"`) && strings.Contains(raw, `"command":"shop"`), raw)
}
