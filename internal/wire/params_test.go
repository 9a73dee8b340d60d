package wire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_InsertionOrder(t *testing.T) {
	params := NewParams()
	params.Add("select", "title")
	params.Add("id", "eq.1")
	params.Add("order", "title.asc")

	pairs := params.Pairs()
	require.Len(t, pairs, 3)
	assert.Equal(t, Pair{Key: "select", Value: "title"}, pairs[0])
	assert.Equal(t, Pair{Key: "id", Value: "eq.1"}, pairs[1])
	assert.Equal(t, Pair{Key: "order", Value: "title.asc"}, pairs[2])
}

func TestParams_DuplicateKeysKept(t *testing.T) {
	params := NewParams()
	params.Add("id", "gte.1")
	params.Add("id", "lte.9")

	assert.Equal(t, 2, params.Len())
	assert.Equal(t, "id=gte.1&id=lte.9", params.Encode())
}

func TestParams_Encode(t *testing.T) {
	testCases := []struct {
		name  string
		pairs []Pair
		want  string
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name:  "single",
			pairs: []Pair{{"title", "eq.Cheese"}},
			want:  "title=eq.Cheese",
		},
		{
			name:  "multiple in order",
			pairs: []Pair{{"a", "1"}, {"b", "2"}, {"c", "3"}},
			want:  "a=1&b=2&c=3",
		},
		{
			name:  "no escaping applied",
			pairs: []Pair{{"or", "(a.eq.1,b.eq.2)"}},
			want:  "or=(a.eq.1,b.eq.2)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params := NewParams()
			for _, p := range tc.pairs {
				params.Add(p.Key, p.Value)
			}
			assert.Equal(t, tc.want, params.Encode())
		})
	}
}

func TestParams_MarshalJSON_PreservesOrderAndDuplicates(t *testing.T) {
	params := NewParams()
	params.Add("id", "gte.1")
	params.Add("select", "title")
	params.Add("id", "lte.9")

	data, err := json.Marshal(params)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"key":"id","value":"gte.1"},{"key":"select","value":"title"},{"key":"id","value":"lte.9"}]`,
		string(data))

	// Array form, not an object - an object would collapse the two id keys.
	assert.Equal(t, byte('['), data[0])
}

func TestParams_MarshalJSON_Empty(t *testing.T) {
	data, err := json.Marshal(NewParams())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestParams_NilReceiverSafe(t *testing.T) {
	var params *Params
	assert.Equal(t, 0, params.Len())
	assert.Nil(t, params.Pairs())
	assert.Equal(t, "", params.Encode())
}
