package sources

import (
	"context"
	"groqchat/groqchat/config"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_Badger(t *testing.T) {
	req := require.New(t)
	store, err := Open(context.Background(), config.Config{
		StoreDriver:    config.StoreBadger,
		BadgerFilepath: filepath.Join(t.TempDir(), "badger"),
	})
	req.NoError(err)
	defer store.Close()

	req.NoError(store.Ping(context.Background()))
	n, err := store.Count(context.Background(), "c1")
	req.NoError(err)
	req.Zero(n)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.Config{StoreDriver: "etcd"})
	require.ErrorContains(t, err, "unknown store driver")
}
