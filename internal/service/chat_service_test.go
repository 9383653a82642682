package service

import (
	"testing"

	"github.com/roobux/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedChatUser(t *testing.T, users *fakeUserRepo) *models.User {
	t.Helper()
	user := &models.User{Email: "chat@example.com"}
	require.NoError(t, users.SaveUser(user))
	return user
}

func TestSendUserMessageFlagsAdminUnread(t *testing.T) {
	users := newFakeUserRepo()
	chats := newFakeChatRepo()
	hub := &fakeBroadcaster{}
	svc := NewChatService(chats, users, hub)

	user := seedChatUser(t, users)

	message, err := svc.SendUserMessage(user.ID.Hex(), "hello")
	require.NoError(t, err)
	assert.Equal(t, models.ChatSenderUser, message.Sender)

	chat := chats.chats[user.ID]
	require.NotNil(t, chat)
	assert.True(t, chat.AdminHasUnread)
	assert.False(t, chat.UserHasUnread)
	assert.Equal(t, "hello", chat.LastMessage)

	require.Len(t, hub.topics, 1)
	assert.Equal(t, "chat:"+user.ID.Hex(), hub.topics[0])
}

func TestAdminReplyFlagsUserUnread(t *testing.T) {
	users := newFakeUserRepo()
	chats := newFakeChatRepo()
	svc := NewChatService(chats, users, &fakeBroadcaster{})

	user := seedChatUser(t, users)

	_, err := svc.SendAdminReply(user.ID.Hex(), "how can we help")
	require.NoError(t, err)

	chat := chats.chats[user.ID]
	require.NotNil(t, chat)
	assert.True(t, chat.UserHasUnread)
	assert.False(t, chat.AdminHasUnread)
}

func TestSendKeepsSenderUnreadFlag(t *testing.T) {
	users := newFakeUserRepo()
	chats := newFakeChatRepo()
	svc := NewChatService(chats, users, &fakeBroadcaster{})

	user := seedChatUser(t, users)

	// Admin replies first, so the user has an unread message waiting.
	_, err := svc.SendAdminReply(user.ID.Hex(), "welcome")
	require.NoError(t, err)
	require.True(t, chats.chats[user.ID].UserHasUnread)

	// The user sends without opening the chat; their own unread flag must
	// survive the send.
	_, err = svc.SendUserMessage(user.ID.Hex(), "thanks")
	require.NoError(t, err)

	chat := chats.chats[user.ID]
	assert.True(t, chat.UserHasUnread)
	assert.True(t, chat.AdminHasUnread)
}

func TestMarkReadClearsOwnSide(t *testing.T) {
	users := newFakeUserRepo()
	chats := newFakeChatRepo()
	svc := NewChatService(chats, users, &fakeBroadcaster{})

	user := seedChatUser(t, users)
	_, err := svc.SendUserMessage(user.ID.Hex(), "hi")
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(user.ID.Hex(), models.ChatSenderAdmin))
	assert.False(t, chats.chats[user.ID].AdminHasUnread)
}

func TestSendRejectsEmptyText(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewChatService(newFakeChatRepo(), users, &fakeBroadcaster{})

	user := seedChatUser(t, users)
	_, err := svc.SendUserMessage(user.ID.Hex(), "")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestSendUnknownUser(t *testing.T) {
	svc := NewChatService(newFakeChatRepo(), newFakeUserRepo(), &fakeBroadcaster{})

	_, err := svc.SendUserMessage("64b0c0ffee0000000000dead", "hi")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
