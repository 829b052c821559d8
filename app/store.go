package app

import (
	"github.com/rs/zerolog/log"

	"github.com/notedraft/notedraft/internal/db"
	"github.com/notedraft/notedraft/internal/db/controller/setting"
	"github.com/notedraft/notedraft/internal/settings"
)

// openStore opens the settings database. The returned func closes it.
func openStore() (setting.Record, func(), error) {
	gdb, err := db.Open(cfg.DB)
	if err != nil {
		return setting.Record{}, nil, err
	}

	closeFn := func() {
		if err := db.Close(gdb); err != nil {
			log.Warn().Err(err).Msg("can't close settings database")
		}
	}

	return setting.Record{DB: gdb, Name: settings.RecordName}, closeFn, nil
}
