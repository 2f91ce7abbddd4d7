package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriState_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want TriState
	}{
		{`null`, Unset},
		{`"na"`, Unset},
		{`""`, Unset},
		{`1`, Enabled},
		{`"1"`, Enabled},
		{`true`, Enabled},
		{`0`, Disabled},
		{`"0"`, Disabled},
		{`false`, Disabled},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var got TriState
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTriState_RejectsTruthiness(t *testing.T) {
	for _, raw := range []string{`2`, `"maybe"`, `-1`, `[]`} {
		var got TriState
		assert.Error(t, json.Unmarshal([]byte(raw), &got), raw)
	}
}

func TestTriState_DisabledIsNotUnset(t *testing.T) {
	var form struct {
		PF TriState `json:"pf"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"pf":0}`), &form))
	assert.True(t, form.PF.IsSet())
	assert.False(t, form.PF.IsEnabled())

	out, err := json.Marshal(form)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pf":0}`, string(out))

	form.PF = Unset
	out, err = json.Marshal(form)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pf":"na"}`, string(out))
}
