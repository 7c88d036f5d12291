// Package csvimport lee juegos de mesa desde CSV (id,name,description,quantity,price).
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/boardgame-tracker/internal/application/inventory"
	"github.com/jhoicas/boardgame-tracker/internal/domain/entity"
)

// Charsets soportados.
const (
	CharsetUTF8   = "utf-8"
	CharsetLatin1 = "iso-8859-1"
)

const columns = 5

// NewReader envuelve r para decodificar el charset indicado a UTF-8.
func NewReader(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", CharsetUTF8, "utf8":
		return r, nil
	case CharsetLatin1, "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("charset no soportado: %q", charset)
	}
}

// Read parsea el CSV. Una primera fila que empiece por "id" se toma como encabezado.
// Cada fila se valida igual que el formulario de alta.
func Read(r io.Reader, charset string) ([]entity.BoardGame, error) {
	in, err := NewReader(r, charset)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = columns
	cr.TrimLeadingSpace = true

	var games []entity.BoardGame
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv línea %d: %w", line, err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "id") {
			continue
		}
		game, err := inventory.FormValues{
			ID:          rec[0],
			Name:        rec[1],
			Description: rec[2],
			Quantity:    rec[3],
			Price:       rec[4],
		}.Parse()
		if err != nil {
			return nil, fmt.Errorf("csv línea %d: %w", line, err)
		}
		games = append(games, game)
	}
	return games, nil
}
