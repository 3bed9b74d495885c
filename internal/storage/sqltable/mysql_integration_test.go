//go:build integration

package sqltable_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"review_explorer/internal/domain"
	"review_explorer/internal/storage/sqltable"
)

func TestSource_MySQL(t *testing.T) {
	// Start isolated MySQL; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=explorer",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/explorer?parseTime=true&charset=utf8mb4,utf8&loc=UTC", hostPort)

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(sqltable.SchemaMySQL); err != nil {
		t.Fatalf("schema: %v", err)
	}
	const ins = `INSERT INTO hotel_sentiment
  (region, hotel, positive, negative, noise, price, location, service, cleanliness, amenities, latitude, longitude)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, h := range []string{"A호텔", "B호텔", "A호텔"} {
		if _, err := db.Exec(ins, "서울", h, "p", "n", 1, 2, 3, 4, 5, 6, nil, nil); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	src, err := sqltable.New(db, "hotel_sentiment")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ds, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ds.Records) != 3 || ds.Records[1].Hotel != "B호텔" || ds.Stats.MissingCoords != 3 {
		t.Fatalf("unexpected dataset: %+v", ds.Stats)
	}
	if ds.Records[0].Scores.Get(domain.Amenities) != 6 {
		t.Fatalf("unexpected scores: %v", ds.Records[0].Scores)
	}
}
