package sqltable

import "fmt"

// Columns are selected by name so the physical order of the table does not
// matter; id fixes the row order.
const selectRecordsSQL = `
SELECT
  region,
  hotel,
  positive,
  negative,
  noise,
  price,
  location,
  service,
  cleanliness,
  amenities,
  latitude,
  longitude
FROM %s
ORDER BY id
`

func selectRecords(table string) string { return fmt.Sprintf(selectRecordsSQL, table) }

// SchemaSQLite and SchemaMySQL create the expected table.
const SchemaSQLite = `
CREATE TABLE IF NOT EXISTS hotel_sentiment (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  region      TEXT    NOT NULL,
  hotel       TEXT    NOT NULL,
  positive    TEXT,
  negative    TEXT,
  noise       REAL,
  price       REAL,
  location    REAL,
  service     REAL,
  cleanliness REAL,
  amenities   REAL,
  latitude    REAL,
  longitude   REAL
)`

const SchemaMySQL = "CREATE TABLE IF NOT EXISTS hotel_sentiment (\n" +
	"  id          BIGINT AUTO_INCREMENT PRIMARY KEY,\n" +
	"  region      VARCHAR(64)  NOT NULL,\n" +
	"  hotel       VARCHAR(255) NOT NULL,\n" +
	"  positive    TEXT,\n" +
	"  negative    TEXT,\n" +
	"  noise       DOUBLE,\n" +
	"  price       DOUBLE,\n" +
	"  location    DOUBLE,\n" +
	"  service     DOUBLE,\n" +
	"  cleanliness DOUBLE,\n" +
	"  amenities   DOUBLE,\n" +
	"  latitude    DOUBLE,\n" +
	"  longitude   DOUBLE,\n" +
	"  KEY idx_region (region)\n" +
	") DEFAULT CHARSET=utf8mb4"
