package database

// migrationsSQL holds every migration keyed by version. Versions start at
// 1 and are contiguous.
var migrationsSQL = map[int]string{
	1: migrationV1Locations,
	2: migrationV2LocationIndexes,
}

// migrationV1Locations creates the saved location table. Coordinates are
// validated by the application before insert; the CHECK constraints catch
// anything written around it.
const migrationV1Locations = `
CREATE TABLE IF NOT EXISTS locations (
    id TEXT PRIMARY KEY,               -- uuid
    name TEXT NOT NULL UNIQUE,

    latitude REAL NOT NULL CHECK (latitude BETWEEN -90 AND 90),
    longitude REAL NOT NULL CHECK (longitude BETWEEN -180 AND 180),
    elevation REAL NOT NULL DEFAULT 0 CHECK (elevation >= 0),

    -- IANA zone name, e.g. Asia/Jerusalem
    timezone TEXT NOT NULL,

    -- Selects single-day Yomim Tovim and the Israeli parsha cycle
    in_israel INTEGER NOT NULL DEFAULT 0 CHECK (in_israel IN (0, 1)),

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

const migrationV2LocationIndexes = `
CREATE INDEX IF NOT EXISTS idx_locations_timezone ON locations(timezone);
`
