package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/resumeparser/pkg/health/checkers"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestReady(t *testing.T) {
	assert.NoError(t, NewService().Ready(context.Background()))
	assert.NoError(t, NewService(nil, checkers.NewPostgresChecker(pinger{})).Ready(context.Background()))

	err := NewService(checkers.NewPostgresChecker(pinger{err: errors.New("refused")})).Ready(context.Background())
	assert.EqualError(t, err, "postgres: refused")
}
