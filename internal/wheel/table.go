// Package wheel implements the prize wheel: a weighted prize table,
// the spin animation that lands the drawn prize under the pointer, and
// the display-list renderer the page paints from.
package wheel

import (
	"math"
	"math/rand"

	"vapextuc-storefront/internal/models"
)

// DefaultPrizes returns the playable prize table. Weights are
// percentages and sum to 100.
func DefaultPrizes() []models.Prize {
	return []models.Prize{
		{Name: "Sin recompensa", Icon: "🎁", Weight: 80.0, Description: "Intenta de nuevo en 3 días"},
		{Name: "Envío gratis", Icon: "🚚", Weight: 7.5, Description: "Próximo envío gratuito"},
		{Name: "5% descuento", Icon: "💰", Weight: 7.5, Description: "5% de descuento en tu próxima compra"},
		{Name: "10% descuento", Icon: "💵", Weight: 5.0, Description: "10% de descuento en tu próxima compra"},
	}
}

// DisplayPrizes is the marketing list shown next to the wheel. It
// includes prizes that are never actually drawn.
func DisplayPrizes() []models.Prize {
	return []models.Prize{
		{Name: "Sin recompensa", Icon: "🎁"},
		{Name: "Envío gratis", Icon: "🚚"},
		{Name: "5% descuento", Icon: "💰"},
		{Name: "10% descuento", Icon: "💵"},
		{Name: "25% descuento", Icon: "💎"},
		{Name: "50% descuento", Icon: "👑"},
		{Name: "100% descuento", Icon: "🏆"},
	}
}

// Table is an immutable weighted prize table. Segment geometry is
// derived from the weights, so draw odds and on-wheel arc sizes always
// agree.
type Table struct {
	prizes []models.Prize
	total  float64
}

// NewTable builds a table from the given prizes.
func NewTable(prizes []models.Prize) *Table {
	t := &Table{prizes: make([]models.Prize, len(prizes))}
	copy(t.prizes, prizes)
	for _, p := range t.prizes {
		t.total += p.Weight
	}
	return t
}

// DefaultTable returns a table over DefaultPrizes.
func DefaultTable() *Table {
	return NewTable(DefaultPrizes())
}

// Len returns the number of prizes.
func (t *Table) Len() int { return len(t.prizes) }

// Total returns the sum of the weights.
func (t *Table) Total() float64 { return t.total }

// Prizes returns a copy of the prize list in table order.
func (t *Table) Prizes() []models.Prize {
	out := make([]models.Prize, len(t.prizes))
	copy(out, t.prizes)
	return out
}

// Prize returns the prize at index i.
func (t *Table) Prize(i int) models.Prize { return t.prizes[i] }

// SelectPrize draws one prize at the table's odds.
func (t *Table) SelectPrize(rng *rand.Rand) (int, models.Prize) {
	i := t.pick(rng.Float64() * t.total)
	return i, t.prizes[i]
}

// pick walks the cumulative weights and returns the index whose bucket
// contains draw. A draw at or past the total falls back to the first
// prize.
func (t *Table) pick(draw float64) int {
	accumulated := 0.0
	for i, p := range t.prizes {
		accumulated += p.Weight
		if draw < accumulated {
			return i
		}
	}
	return 0
}

// Arc returns the start angle and angular length of segment i, with
// segment 0 starting at angle 0 and segments laid out clockwise in
// table order.
func (t *Table) Arc(i int) (start, length float64) {
	for j := 0; j < i; j++ {
		start += 2 * math.Pi * t.prizes[j].Weight / t.total
	}
	length = 2 * math.Pi * t.prizes[i].Weight / t.total
	return start, length
}

// AngleForPrize returns the wheel rotation that puts the center of
// segment i under the pointer. The pointer sits at the top of the
// wheel, at angle -π/2.
func (t *Table) AngleForPrize(i int) float64 {
	start, length := t.Arc(i)
	return -math.Pi/2 - (start + length/2)
}
