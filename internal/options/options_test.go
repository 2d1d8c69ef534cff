package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type target struct {
	a int
	b string
}

func TestApply_Order(t *testing.T) {
	tgt := &target{}
	err := Apply(tgt,
		NoError(func(tg *target) { tg.a = 1 }),
		NoError(func(tg *target) { tg.a = 2 }),
		NoError(func(tg *target) { tg.b = "done" }),
	)
	require.NoError(t, err)
	require.Equal(t, 2, tgt.a)
	require.Equal(t, "done", tgt.b)
}

func TestApply_StopsAtError(t *testing.T) {
	boom := errors.New("boom")
	tgt := &target{}
	err := Apply(tgt,
		NoError(func(tg *target) { tg.a = 1 }),
		New(func(tg *target) error { return boom }),
		NoError(func(tg *target) { tg.a = 99 }),
	)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, tgt.a)
}

func TestApply_NoOptions(t *testing.T) {
	require.NoError(t, Apply(&target{}))
}
