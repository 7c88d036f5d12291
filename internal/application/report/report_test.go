package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boardgame-tracker/internal/application/ports"
	"github.com/jhoicas/boardgame-tracker/internal/application/report"
	"github.com/jhoicas/boardgame-tracker/internal/domain"
	"github.com/jhoicas/boardgame-tracker/internal/domain/entity"
)

// listOnlyAPI solo implementa ListAll; el reporte no usa el resto del puerto.
type listOnlyAPI struct {
	ports.InventoryAPI
	games []entity.BoardGame
	err   error
}

func (a listOnlyAPI) ListAll(context.Context) ([]entity.BoardGame, error) {
	return a.games, a.err
}

type stubRenderer struct{ got *report.Summary }

func (r *stubRenderer) Format() string      { return "txt" }
func (r *stubRenderer) ContentType() string { return "text/plain" }
func (r *stubRenderer) Render(_ context.Context, s *report.Summary) ([]byte, error) {
	r.got = s
	return []byte("ok"), nil
}

func inventario() []entity.BoardGame {
	return []entity.BoardGame{
		{ID: "1", Name: "catan", Description: "Colonos", Quantity: 3, Price: 39.99},
		{ID: "2", Name: "Azul", Description: "Losetas", Quantity: 1, Price: 30},
		{ID: "3", Name: "Brass", Description: "Industria", Quantity: 0, Price: 0.1},
	}
}

func TestBuild_TotalesYStockBajo(t *testing.T) {
	uc := report.NewUseCase(listOnlyAPI{games: inventario()}, 1)

	s, err := uc.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, s.Titles)
	assert.Equal(t, 4, s.TotalUnits)
	// 39.99*3 + 30*1 + 0.10*0
	assert.Equal(t, "149.97", s.TotalValue.StringFixed(2))

	require.Len(t, s.Lines, 3)
	assert.Equal(t, []string{"Azul", "Brass", "catan"}, []string{s.Lines[0].Name, s.Lines[1].Name, s.Lines[2].Name})

	require.Len(t, s.LowStock, 2)
	assert.Equal(t, "2", s.LowStock[0].ID)
	assert.Equal(t, "3", s.LowStock[1].ID)
}

func TestBuild_ErrorDelAPI(t *testing.T) {
	uc := report.NewUseCase(listOnlyAPI{err: errors.New("caído")}, 1)
	_, err := uc.Build(context.Background())
	assert.Error(t, err)
}

func TestGenerate_FormatoYNombre(t *testing.T) {
	r := &stubRenderer{}
	uc := report.NewUseCase(listOnlyAPI{games: inventario()}, 1, r)

	doc, err := uc.Generate(context.Background(), " TXT ")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", doc.ContentType)
	assert.Equal(t, []byte("ok"), doc.Body)
	assert.Regexp(t, `^inventario-\d{8}-\d{6}\.txt$`, doc.Filename)
	require.NotNil(t, r.got)
	assert.WithinDuration(t, time.Now(), r.got.GeneratedAt, time.Minute)
	assert.Equal(t, []string{"txt"}, uc.Formats())
}

func TestGenerate_FormatoDesconocido(t *testing.T) {
	uc := report.NewUseCase(listOnlyAPI{}, 1)
	_, err := uc.Generate(context.Background(), "docx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
