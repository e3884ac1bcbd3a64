// Package source reads ';'-delimited question/answer files into cards.
package source

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"

	"github.com/vytor/flashcards/internal/errors"
	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/models"
)

// Delimiter separates question and answer on each row.
const Delimiter = ';'

// Stats summarises what happened to the rows of one source.
type Stats struct {
	Path    string
	Rows    int
	Kept    int
	Dropped int
}

// ReadRows tokenizes r into rows. Rows the tokenizer rejects (for example a
// stray quote) are skipped, matching how ill-shaped rows are treated later.
func ReadRows(r io.Reader) ([][]string, error) {
	rd := csv.NewReader(r)
	rd.Comma = Delimiter
	rd.FieldsPerRecord = -1
	rd.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if stderrors.As(err, &parseErr) {
				continue
			}
			return nil, err
		}
		rows = append(rows, rec)
	}
}

// CardsFromRows keeps rows with exactly two fields: question then answer.
func CardsFromRows(rows [][]string) []models.Card {
	cards := make([]models.Card, 0, len(rows))
	for _, row := range rows {
		if len(row) != 2 {
			continue
		}
		cards = append(cards, models.NewCard(row[0], row[1]))
	}
	return cards
}

// LoadFile reads a single source file.
func LoadFile(ctx context.Context, path string) ([]models.Card, Stats, error) {
	log := logger.FromContext(ctx).WithPrefix("source")

	f, err := os.Open(path)
	if err != nil {
		log.Error("failed to open %s: %v", path, err)
		return nil, Stats{Path: path}, errors.NewSourceReadError(path, err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		log.Error("failed to read %s: %v", path, err)
		return nil, Stats{Path: path}, errors.NewSourceReadError(path, err)
	}

	cards := CardsFromRows(rows)
	st := Stats{Path: path, Rows: len(rows), Kept: len(cards), Dropped: len(rows) - len(cards)}
	if st.Dropped > 0 {
		log.Debug("dropped %d rows without exactly two fields in %s", st.Dropped, path)
	}
	log.Info("loaded %s: %d cards", path, st.Kept)
	return cards, st, nil
}

// Load reads every path in order and concatenates their cards.
// The first unreadable file aborts the load.
func Load(ctx context.Context, paths []string) ([]models.Card, error) {
	var all []models.Card
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cards, _, err := LoadFile(ctx, p)
		if err != nil {
			return nil, err
		}
		all = append(all, cards...)
	}
	return all, nil
}
