package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title string `json:"title"`
	Price int64  `json:"price"`
}

func TestGetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := &Cache{Db: db}

	mock.ExpectGet("catalog:services").RedisNil()

	var out []payload
	found, err := c.Get(context.Background(), "catalog:services", &out)
	require.NoError(t, err)
	require.False(t, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := &Cache{Db: db}

	want := []payload{{Title: "AI Fundamentals", Price: 15000}}
	raw, err := json.Marshal(want)
	require.NoError(t, err)
	mock.ExpectGet("catalog:services").SetVal(string(raw))

	var out []payload
	found, err := c.Get(context.Background(), "catalog:services", &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, want, out)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := &Cache{Db: db}

	v := payload{Title: "AI Fundamentals", Price: 15000}
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	mock.ExpectSet("catalog:services", raw, 5*time.Minute).SetVal("OK")

	require.NoError(t, c.Set(context.Background(), "catalog:services", v, 5*time.Minute))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidate(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := &Cache{Db: db}

	mock.ExpectDel("catalog:services", "catalog:sessions").SetVal(2)

	require.NoError(t, c.Invalidate(context.Background(), "catalog:services", "catalog:sessions"))
	require.NoError(t, mock.ExpectationsWereMet())
}
