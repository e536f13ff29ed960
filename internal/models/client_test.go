package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_KeepsUnknownMembers(t *testing.T) {
	const in = `{
		"id": "1",
		"nume": "Ionescu",
		"adresa": "Str. X",
		"masini": [
			{"serie_sasiu": "ABC123", "culoare": "rosu", "km": 120000, "an_fabricatie": "2019"}
		]
	}`

	var c Client
	require.NoError(t, json.Unmarshal([]byte(in), &c))
	assert.Equal(t, "1", c.ID)
	assert.Equal(t, "Ionescu", c.Fields.String("nume"))
	require.Len(t, c.Masini, 1)
	assert.Equal(t, "ABC123", c.Masini[0].SerieSasiu)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestClient_IDFirst(t *testing.T) {
	c := Client{ID: "3", Fields: Members{"nume": json.RawMessage(`"Pop"`)}, Masini: []Vehicle{}}

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"3","nume":"Pop","masini":[]}`, string(out))
}

func TestClient_OddShapesStayVerbatim(t *testing.T) {
	const in = `{"id":7,"masini":"none"}`

	var c Client
	require.NoError(t, json.Unmarshal([]byte(in), &c))
	assert.Empty(t, c.ID)
	assert.Nil(t, c.Masini)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestFindVehicle_ReturnsDeepCopy(t *testing.T) {
	var c Client
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","masini":[{"serie_sasiu":"ABC123","culoare":"rosu"}]}`), &c))

	v, ok := c.FindVehicle("ABC123")
	require.True(t, ok)

	c.Masini[0].Fields["culoare"] = json.RawMessage(`"verde"`)
	assert.Equal(t, "rosu", v.Fields.String("culoare"))

	_, ok = c.FindVehicle("ZZZ")
	assert.False(t, ok)
}
