package dao

import (
	"context"
	"groqchat/groqchat/sources/models"
	"groqchat/groqchat/sources/psql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func newTestDAO(t *testing.T) *MessageDAO {
	t.Helper()
	db, err := psql.Open(context.Background(), sqlite.Open(filepath.Join(t.TempDir(), "chat.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewMessageDAO(db)
}

func seed(t *testing.T, dao *MessageDAO, conversationID string, contents ...string) []models.Message {
	t.Helper()
	at := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	var stored []models.Message
	for i, content := range contents {
		sender := models.SenderUser
		if i%2 == 1 {
			sender = models.SenderAssistant
		}
		msg, err := dao.Append(context.Background(), models.NewMessage(conversationID, sender, content, at.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
		stored = append(stored, *msg)
	}
	return stored
}

func contentsOf(messages []models.Message) []string {
	out := make([]string, 0, len(messages))
	for _, m := range messages {
		out = append(out, m.Content)
	}
	return out
}

func Test_MessageDAO_QueryLatest_NewestFirst(t *testing.T) {
	req := require.New(t)
	dao := newTestDAO(t)
	seed(t, dao, "c1", "one", "two", "three", "four")
	seed(t, dao, "c2", "other")

	latest, err := dao.QueryLatest(context.Background(), "c1", 3)
	req.NoError(err)
	req.Equal([]string{"four", "three", "two"}, contentsOf(latest))
}

func Test_MessageDAO_QueryRange_OldestFirst(t *testing.T) {
	req := require.New(t)
	dao := newTestDAO(t)
	stored := seed(t, dao, "c1", "one", "two", "three", "four")

	page, err := dao.QueryRange(context.Background(), "c1", 1, 2)
	req.NoError(err)
	req.Equal([]string{"two", "three"}, contentsOf(page))
	req.Equal(stored[1].ID, page[0].ID)
	req.Equal(models.SenderAssistant, page[0].Sender)

	beyond, err := dao.QueryRange(context.Background(), "c1", 10, 5)
	req.NoError(err)
	req.Empty(beyond)
}

func Test_MessageDAO_Count(t *testing.T) {
	req := require.New(t)
	dao := newTestDAO(t)
	seed(t, dao, "c1", "one", "two")

	n, err := dao.Count(context.Background(), "c1")
	req.NoError(err)
	req.EqualValues(2, n)

	n, err = dao.Count(context.Background(), "nobody")
	req.NoError(err)
	req.Zero(n)
	req.NoError(dao.Ping(context.Background()))
}
