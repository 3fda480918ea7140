package simplex

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableau_AtReturnsACopy(t *testing.T) {
	tab, err := NewTableau([][]float64{
		{1, 2, 40},
		{1, 1, 30},
		{12, 16, 0},
	})
	assert.NoError(t, err)

	v := tab.At(0, 1)
	v.SetInt64(999)

	assert.Equal(t, "2", tab.FormatAt(0, 1), "mutating a returned value must not touch the tableau")
}

func TestTableau_LabelsReturnsACopy(t *testing.T) {
	tab, err := NewTableau([][]float64{
		{1, 5},
		{1, 0},
	})
	assert.NoError(t, err)

	labels := tab.Labels()
	labels[0] = "mangled"

	assert.Equal(t, []string{"X1", "S1", "Z", ""}, tab.Labels())
}

func TestTableau_ObjectiveValue(t *testing.T) {
	sol, err := maximizeFixture().Solve()
	assert.NoError(t, err)

	assert.Equal(t, 0, sol.History[0].ObjectiveValue().Sign())
	assert.Equal(t, 0, sol.Final().ObjectiveValue().Cmp(big.NewRat(400, 1)))
}

func TestTableau_Dense(t *testing.T) {
	tab, err := NewTableau([][]float64{
		{1, 2, 40},
		{1, 1, 30},
		{12, 16, 0},
	})
	assert.NoError(t, err)

	d := tab.Dense()
	r, c := d.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 6, c)
	assert.Equal(t, -16.0, d.At(2, 1))
	assert.Equal(t, 40.0, d.At(0, 5))

	// the export is a snapshot: writing to it leaves the tableau alone
	d.Set(0, 0, 123)
	assert.Equal(t, "1", tab.FormatAt(0, 0))
}

func TestTableau_Clone(t *testing.T) {
	tab, err := NewTableau([][]float64{
		{1, 2, 40},
		{1, 1, 30},
		{12, 16, 0},
	})
	assert.NoError(t, err)

	cp := tab.clone()
	cp.rows[0][0].SetInt64(77)

	assert.Equal(t, "1", tab.FormatAt(0, 0))
	assert.Equal(t, tab.Labels(), cp.Labels())
}
