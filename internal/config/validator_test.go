package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	slotdeckerrors "github.com/alexisbeaulieu97/slotdeck/pkg/errors"
)

func TestValidateRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name:  "missing version",
			doc:   "gesture: {threshold: 3}",
			field: "version",
		},
		{
			name:  "bad version",
			doc:   `version: "one"`,
			field: "version",
		},
		{
			name:  "unknown plugin slot",
			doc:   "version: \"1.0\"\nplugins:\n  - {name: outline, slot: footer}",
			field: "plugins[0].slot",
		},
		{
			name:  "bad plugin name",
			doc:   "version: \"1.0\"\nplugins:\n  - {name: Outline!, slot: sidebar}",
			field: "plugins[0].name",
		},
		{
			name:  "unknown slot key",
			doc:   "version: \"1.0\"\nslots:\n  footer: {max: 1}",
			field: "slots[footer]",
		},
		{
			name:  "threshold out of range",
			doc:   "version: \"1.0\"\ngesture: {threshold: 1000}",
			field: "gesture.threshold",
		},
		{
			name:  "body height out of range",
			doc:   "version: \"1.0\"\ndrawer: {body_height: 500}",
			field: "drawer.body_height",
		},
		{
			name:  "slop not below threshold",
			doc:   "version: \"1.0\"\ngesture: {threshold: 3, drag_slop: 3}",
			field: "gesture.drag_slop",
		},
		{
			name:  "sidebar max above one",
			doc:   "version: \"1.0\"\nslots:\n  sidebar: {max: 2}",
			field: "slots.sidebar.max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("layout.yaml", []byte(tt.doc))
			require.Error(t, err)

			var validationErr *slotdeckerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestValidateNil(t *testing.T) {
	err := Validate(nil)
	var validationErr *slotdeckerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "config", validationErr.Field)
}

func TestValidateDefaultIsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}
