package sanitize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims whitespace", "  chambre froide  ", "chambre froide"},
		{"strips tags", "<b>friteuse</b> n°2", "friteuse n°2"},
		{"strips script blocks", `<script>alert(1)</script>relevé`, "alert(1)relevé"},
		{"removes control characters", "congel\x00ateur\x07", "congelateur"},
		{"keeps newlines and tabs", "ligne 1\n\tligne 2", "ligne 1\n\tligne 2"},
		{"empty stays empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestRepairMojibake(t *testing.T) {
	t.Run("repairs a latin-1 misread", func(t *testing.T) {
		require.Equal(t, "Crème brûlée", RepairMojibake("CrÃ¨me brÃ»lÃ©e"))
	})

	t.Run("repairs curly punctuation", func(t *testing.T) {
		require.Equal(t, "l’huile", RepairMojibake("lâ€™huile"))
	})

	t.Run("leaves clean accented text alone", func(t *testing.T) {
		require.Equal(t, "Crème brûlée", RepairMojibake("Crème brûlée"))
	})

	t.Run("keeps input when reinterpretation is invalid utf-8", func(t *testing.T) {
		// "Ã " trips the garble signal but its Latin-1 bytes are a lone
		// lead byte, so no repair is possible.
		in := "Ã suivre"
		require.Equal(t, in, RepairMojibake(in))
	})

	t.Run("keeps input containing runes beyond latin-1", func(t *testing.T) {
		in := "Ã東"
		require.Equal(t, in, RepairMojibake(in))
	})

	t.Run("applied by Text before stripping", func(t *testing.T) {
		require.Equal(t, "Crème", Text(" CrÃ¨me "))
	})
}
