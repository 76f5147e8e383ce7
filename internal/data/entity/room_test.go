package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoomType(t *testing.T) {
	tests := []struct {
		label string
		want  RoomType
		ok    bool
	}{
		{"Deluxe Room", RoomTypeDeluxe, true},
		{"deluxe", RoomTypeDeluxe, true},
		{"  SUITE ", RoomTypeSuite, true},
		{"Standard room", RoomTypeStandard, true},
		{"Penthouse", "", false},
		{"room", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseRoomType(tt.label)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoomTypeLabel(t *testing.T) {
	assert.Equal(t, "Deluxe Room", RoomTypeDeluxe.Label())
	assert.Equal(t, "Suite", RoomTypeSuite.Label())

	for _, rt := range []RoomType{RoomTypeStandard, RoomTypeDeluxe, RoomTypeSuite} {
		parsed, ok := ParseRoomType(rt.Label())
		assert.True(t, ok)
		assert.Equal(t, rt, parsed)
	}
}
