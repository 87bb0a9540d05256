package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"log"

	"git.lost.host/meutraa/msd/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultStore struct {
	db *sql.DB
}

func (s *DefaultStore) Init(file string) error {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists ratings
	  (
		  id integer not null primary key,
		  sum text,
		  mod text,
		  rate real,
		  rating real
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		return err
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func hashChart(c *game.Chart) string {
	sum := sha256.Sum256([]byte(c.Difficulty.Section))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *DefaultStore) Save(c *game.Chart, mod string, rate float64, rating float64) {
	_, err := s.db.Exec(
		"insert into ratings(sum, mod, rate, rating) values(?, ?, ?, ?)",
		hashChart(c), mod, rate, rating,
	)
	if nil != err {
		log.Println("unable to save rating", err)
	}
}

func (s *DefaultStore) Load(c *game.Chart) []Entry {
	entries := []Entry{}
	rows, err := s.db.Query(
		"select sum, mod, rate, rating from ratings where sum = ?",
		hashChart(c),
	)
	if nil != err && err != sql.ErrNoRows {
		log.Println("unable to load ratings", err)
		return entries
	}
	defer rows.Close()
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Sum, &e.Mod, &e.Rate, &e.Rating); nil != err {
			log.Println("unable to read rating row", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries
}
