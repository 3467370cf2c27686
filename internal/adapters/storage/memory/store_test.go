package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    string   `json:"id"`
	Times []string `json:"times"`
}

func TestStore_LoadUnknownCollectionIsEmpty(t *testing.T) {
	s := NewStore()

	var got []item
	require.NoError(t, s.Load(context.Background(), "medications", &got))
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Nil(t, s.Raw("medications"))
}

func TestStore_SaveThenLoad(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "medications", []item{{ID: "a", Times: []string{"08:00"}}}))

	var got []item
	require.NoError(t, s.Load(ctx, "medications", &got))
	assert.Equal(t, []item{{ID: "a", Times: []string{"08:00"}}}, got)
	assert.Equal(t, "{\n  \"medications\": [\n    {\n      \"id\": \"a\",\n      \"times\": [\n        \"08:00\"\n      ]\n    }\n  ]\n}\n", string(s.Raw("medications")))
}

func TestStore_LoadReturnsCopies(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	in := []item{{ID: "a", Times: []string{"08:00"}}}
	require.NoError(t, s.Save(ctx, "medications", in))
	in[0].ID = "mutated"

	var first []item
	require.NoError(t, s.Load(ctx, "medications", &first))
	first[0].Times[0] = "99:99"

	var second []item
	require.NoError(t, s.Load(ctx, "medications", &second))
	assert.Equal(t, "a", second[0].ID)
	assert.Equal(t, "08:00", second[0].Times[0])
}

func TestStore_CollectionsAreIndependent(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "medications", []item{{ID: "m"}}))
	require.NoError(t, s.Save(ctx, "intakes", []item{{ID: "i1"}, {ID: "i2"}}))

	var meds, ins []item
	require.NoError(t, s.Load(ctx, "medications", &meds))
	require.NoError(t, s.Load(ctx, "intakes", &ins))
	assert.Len(t, meds, 1)
	assert.Len(t, ins, 2)
}
