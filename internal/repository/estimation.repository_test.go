package repository

import (
	"strings"
	"testing"

	"aifolio/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_parseEstimation(t *testing.T) {
	t.Run("parses a plain json reply", func(t *testing.T) {
		estimation, err := parseEstimation("AAPL", `{"symbol":"AAPL","side":"long","reasoning":"momentum","certainty":72}`)
		require.NoError(t, err)
		require.Equal(t, "AAPL", estimation.Symbol)
		require.Equal(t, domain.SideLong, estimation.Side)
		require.Equal(t, 72.0, estimation.Certainty)
	})

	t.Run("tolerates markdown fences and newlines", func(t *testing.T) {
		reply := "```json\n{\"symbol\":\"AAPL\",\"side\":\"short\",\"reasoning\":\"overbought\",\"certainty\":55}\n```"
		estimation, err := parseEstimation("AAPL", reply)
		require.NoError(t, err)
		require.Equal(t, domain.SideShort, estimation.Side)
	})

	t.Run("rejects unparsable content", func(t *testing.T) {
		_, err := parseEstimation("AAPL", "sorry, I cannot help with that")
		require.ErrorIs(t, err, domain.ErrMalformedEstimation)
	})

	t.Run("rejects an unknown side", func(t *testing.T) {
		_, err := parseEstimation("AAPL", `{"symbol":"AAPL","side":"hold","reasoning":"flat","certainty":50}`)
		require.ErrorIs(t, err, domain.ErrMalformedEstimation)
	})

	t.Run("rejects certainty outside the scale", func(t *testing.T) {
		_, err := parseEstimation("AAPL", `{"symbol":"AAPL","side":"long","reasoning":"sure","certainty":120}`)
		require.ErrorIs(t, err, domain.ErrMalformedEstimation)

		_, err = parseEstimation("AAPL", `{"symbol":"AAPL","side":"long","reasoning":"sure","certainty":-1}`)
		require.ErrorIs(t, err, domain.ErrMalformedEstimation)
	})

	t.Run("accepts the scale boundaries", func(t *testing.T) {
		estimation, err := parseEstimation("AAPL", `{"symbol":"AAPL","side":"long","reasoning":"","certainty":0}`)
		require.NoError(t, err)
		require.Equal(t, 0.0, estimation.Certainty)

		estimation, err = parseEstimation("AAPL", `{"symbol":"AAPL","side":"short","reasoning":"","certainty":100}`)
		require.NoError(t, err)
		require.Equal(t, 100.0, estimation.Certainty)
	})

	t.Run("rejects a reply about a different symbol", func(t *testing.T) {
		_, err := parseEstimation("AAPL", `{"symbol":"MSFT","side":"long","reasoning":"mixed up","certainty":60}`)
		require.ErrorIs(t, err, domain.ErrMalformedEstimation)
	})

	t.Run("truncates oversized reasoning instead of rejecting", func(t *testing.T) {
		long := strings.Repeat("a", 1500)
		estimation, err := parseEstimation("AAPL", `{"symbol":"AAPL","side":"long","reasoning":"`+long+`","certainty":60}`)
		require.NoError(t, err)
		require.Len(t, estimation.Reasoning, 1000)
	})
}
