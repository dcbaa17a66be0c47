package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistRequestCoercesMixedForms(t *testing.T) {
	body := []byte(`{
		"checklist_lantai": true,
		"checklist_kaca_jendela": "true",
		"checklist_pintu": "1",
		"checklist_lawa_lawa": 1,
		"checklist_lubang_angin": "on",
		"checklist_kusen_jendela_dan_pintu": "false",
		"checklist_keterangan": "aman"
	}`)

	var req ChecklistRequest
	require.NoError(t, json.Unmarshal(body, &req))

	assert.True(t, bool(req.ChecklistLantai))
	assert.True(t, bool(req.ChecklistKacaJendela))
	assert.True(t, bool(req.ChecklistPintu))
	assert.True(t, bool(req.ChecklistLawaLawa))
	assert.True(t, bool(req.ChecklistLubangAngin))
	assert.False(t, bool(req.ChecklistKusenJendelaDanPintu))
	assert.Equal(t, "aman", req.ChecklistKeterangan)
}

func TestChecklistRequestMissingFieldsDefaultFalse(t *testing.T) {
	var req ChecklistRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.False(t, bool(req.ChecklistLantai))
}

func TestFlexBoolRejectsGarbage(t *testing.T) {
	var b FlexBool
	assert.Error(t, json.Unmarshal([]byte(`"maybe"`), &b))
}
