package audit

import (
	"context"
	"strings"
	"sync"
	"testing"

	"library_server/internal/config"
	"library_server/internal/dao/db"
	"library_server/internal/dao/db/repository"
	"library_server/internal/dto/request"
	"library_server/internal/infrastructure/mq"
	"library_server/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	mu     sync.Mutex
	values [][]byte
}

func (p *capturePublisher) Publish(_ context.Context, _, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values = append(p.values, value)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func TestAppendAndPublish(t *testing.T) {
	gdb, err := db.Open(&config.DatabaseConfig{Driver: "sqlite", SqlitePath: ":memory:"})
	require.NoError(t, err)
	defer db.Close(gdb)
	repos := repository.NewRepositories(gdb)

	pub := &capturePublisher{}
	rec := NewRecorder(pub, nil)
	actor := request.Actor{ID: 1, Role: "admin", IP: "10.0.0.2"}

	var oplogID uint
	err = repos.Transaction(func(tx *repository.Repositories) error {
		ev, err := rec.Append(tx, actor, ActionBookDelete, 5, "破损")
		oplogID = ev.OplogID
		return err
	})
	require.NoError(t, err)
	assert.NotZero(t, oplogID)

	logs, total, err := repos.Oplog.List(pagination.Params{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "book_delete #5: 破损", logs[0].Reason)
	assert.Equal(t, "10.0.0.2", logs[0].IP)
}

func TestPublishSync(t *testing.T) {
	pub := &capturePublisher{}
	NewRecorder(pub, nil).Publish(mq.OplogEvent{OplogID: 1, AdminID: 1, Action: ActionUserStatus, TargetID: 2})
	require.Len(t, pub.values, 1)
	assert.Contains(t, string(pub.values[0]), `"action":"user_status"`)
}

func TestFormatReasonTruncates(t *testing.T) {
	s := FormatReason(ActionUserStatus, 1, strings.Repeat("长", 300))
	assert.Equal(t, maxReasonLen, len([]rune(s)))
	assert.Equal(t, "user_status #1", FormatReason(ActionUserStatus, 1, ""))
}
