package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zxyilyy/cooked/internal/domain/inventory"
	"github.com/Zxyilyy/cooked/internal/domain/production"
)

func TestStateClone(t *testing.T) {
	s := &State{
		Batches: []*inventory.Batch{
			{ID: "a", Name: "糖", CurrentStock: decimal.NewFromInt(100)},
		},
		FinishedGoods: []*production.FinishedGood{
			{ID: "fg_1", Name: "原味巴斯克 (6寸)", Unit: production.UnitWhole, Quantity: decimal.NewFromInt(2)},
		},
	}

	c := s.Clone()
	c.Batches[0].CurrentStock = decimal.Zero
	c.FinishedGoods[0].Quantity = decimal.Zero
	c.PrependBatch(&inventory.Batch{ID: "b"})

	assert.True(t, s.Batches[0].CurrentStock.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.FinishedGoods[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.Len(t, s.Batches, 1)
}

func TestStatePrependBatch(t *testing.T) {
	s := &State{Batches: []*inventory.Batch{{ID: "old"}}}
	s.PrependBatch(&inventory.Batch{ID: "new"})

	require.Len(t, s.Batches, 2)
	assert.Equal(t, "new", s.Batches[0].ID)
	assert.Equal(t, "old", s.Batches[1].ID)
}

func TestStateRemoveBatch(t *testing.T) {
	s := &State{Batches: []*inventory.Batch{{ID: "a"}, {ID: "b"}}}

	assert.True(t, s.RemoveBatch("a"))
	assert.Len(t, s.Batches, 1)
	assert.False(t, s.RemoveBatch("a"))
}

func TestStatePruneFinishedGoods(t *testing.T) {
	s := &State{FinishedGoods: []*production.FinishedGood{
		{ID: "fg_1", Quantity: decimal.NewFromInt(2)},
		{ID: "fg_2", Quantity: decimal.Zero},
		{ID: "fg_3", Quantity: decimal.NewFromInt(1)},
	}}

	s.PruneFinishedGoods()
	require.Len(t, s.FinishedGoods, 2)
	assert.Equal(t, "fg_1", s.FinishedGoods[0].ID)
	assert.Equal(t, "fg_3", s.FinishedGoods[1].ID)
}

func TestStateFindFinishedGoodByKey(t *testing.T) {
	s := &State{FinishedGoods: []*production.FinishedGood{
		{ID: "fg_1", Name: "原味巴斯克 (6寸)", Unit: production.UnitWhole},
		{ID: "fg_2", Name: "原味巴斯克 (6寸/5切)", Unit: production.UnitSlice},
	}}

	g := s.FindFinishedGoodByKey("原味巴斯克 (6寸/5切)", production.UnitSlice)
	require.NotNil(t, g)
	assert.Equal(t, "fg_2", g.ID)

	assert.Nil(t, s.FindFinishedGoodByKey("原味巴斯克 (6寸/5切)", production.UnitWhole))
}
