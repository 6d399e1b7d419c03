package affeq_test

import (
	"testing"

	"github.com/goaffine/affineeq/affeq"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalRoundTripsEquality(t *testing.T) {
	env := mustEnv(t, "x", "y")
	top := mustTop(t, env)
	s := mustMeetTcons(t, top, xMinusY("x", "y"), affeq.OpEQ)

	data, err := affeq.Marshal(s)
	require.NoError(t, err)

	back, err := affeq.Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, affeq.Show(s), affeq.Show(back))
	require.Equal(t, env.Variables(), back.Env().Variables())
}

func TestMarshalUnmarshalRoundTripsBottom(t *testing.T) {
	env := mustEnv(t, "x")
	bot := affeq.BotEnv(env)

	data, err := affeq.Marshal(bot)
	require.NoError(t, err)

	back, err := affeq.Unmarshal(data)
	require.NoError(t, err)
	require.True(t, back.IsBotEnv())
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	_, err := affeq.Unmarshal([]byte("not: [valid, yaml: structure"))
	require.Error(t, err)
}
