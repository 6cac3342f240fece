// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Key
	}{
		{name: "plain", raw: "Timeout", want: Key{Top: "timeout", Kind: KindPlain}},
		{name: "flat override", raw: "CFG_TIMEOUT", want: Key{Top: "timeout", Kind: KindFlatOverride}},
		{name: "flat override keeps underscores", raw: "cfg_read_timeout", want: Key{Top: "read_timeout", Kind: KindFlatOverride}},
		{name: "grouped", raw: "OSSEUS_DB_HOST", want: Key{Top: "osseus_db", Inner: "host", Kind: KindGrouped}},
		{name: "grouped joins remainder", raw: "osseus_db_read_replica_host", want: Key{Top: "osseus_db", Inner: "read_replica_host", Kind: KindGrouped}},
		{name: "grouped without remainder", raw: "osseus_db", want: Key{Top: "osseus_db", Inner: "", Kind: KindGrouped}},
		{name: "grouped prefix only", raw: "osseus_", want: Key{Top: "osseus_", Inner: "", Kind: KindGrouped}},
		{name: "prefix must lead", raw: "my_osseus_db", want: Key{Top: "my_osseus_db", Kind: KindPlain}},
		{name: "bare osseus is plain", raw: "osseus", want: Key{Top: "osseus", Kind: KindPlain}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	for _, raw := range []string{"OSSEUS_APP_NAME", "cfg_x", "plain", "", "_"} {
		first := Normalize(raw)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Normalize(raw))
		}
	}
}

func TestIsNamespaced(t *testing.T) {
	assert.True(t, IsNamespaced("OSSEUS_APP_NAME"))
	assert.True(t, IsNamespaced("Cfg_Timeout"))
	assert.False(t, IsNamespaced("PATH"))
	assert.False(t, IsNamespaced("ENV"))
}

func TestKeyKind_String(t *testing.T) {
	assert.Equal(t, "plain", KindPlain.String())
	assert.Equal(t, "flat-override", KindFlatOverride.String())
	assert.Equal(t, "grouped", KindGrouped.String())
}
