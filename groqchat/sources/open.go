// groqchat/sources/open.go
package sources

import (
	"context"
	"fmt"
	"groqchat/groqchat/config"
	"groqchat/groqchat/sources/badgerdb"
	"groqchat/groqchat/sources/mongodb"
	"groqchat/groqchat/sources/psql"
	"groqchat/groqchat/sources/psql/dao"
)

var (
	_ MessageStore = (*mongodb.MessageDAO)(nil)
	_ MessageStore = (*dao.MessageDAO)(nil)
	_ MessageStore = (*badgerdb.MessageDAO)(nil)
)

// Open builds the message store selected by cfg.StoreDriver.
// The caller owns the returned store and must Close it.
func Open(ctx context.Context, cfg config.Config) (MessageStore, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		db, err := mongodb.NewDatabase(ctx, cfg.MongoDetails, cfg.DatabaseName, cfg.MessageCollectionName)
		if err != nil {
			return nil, err
		}
		return mongodb.NewMessageDAO(db), nil
	case config.StorePostgres:
		db, err := psql.NewDatabase(ctx, cfg.PostgresDSN())
		if err != nil {
			return nil, err
		}
		return dao.NewMessageDAO(db), nil
	case config.StoreBadger:
		db, err := badgerdb.Open(cfg.BadgerFilepath)
		if err != nil {
			return nil, err
		}
		return badgerdb.NewMessageDAO(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
