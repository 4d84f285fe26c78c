package mapper_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-mapper/container"
	"shape-mapper/mapper"
)

func pairwise(fn func(a, b, c int) int) mapper.MultiFunc {
	return func(args ...any) (any, error) {
		return fn(args[0].(int), args[1].(int), args[2].(int)), nil
	}
}

func TestMapMultiSimplify(t *testing.T) {
	t.Parallel()

	seqs := []container.Sequence{
		container.New(1, 2, 3),
		container.New(5, 6, 7),
		container.New(-1, -2, -3),
	}

	res, diags, err := mapper.MapMulti(seqs, pairwise(func(a, b, c int) int {
		return a*b + b*c + a*c
	}), true)
	require.NoError(t, err)

	assert.False(t, diags.HasWarnings())
	require.Equal(t, mapper.ResultVector, res.Kind)
	assert.Equal(t, []any{-1, -4, -9}, res.Vector.Items())
}

func TestMapMultiRecycling(t *testing.T) {
	t.Parallel()

	t.Run("exact multiple", func(t *testing.T) {
		t.Parallel()

		seqs := []container.Sequence{
			container.New(1, 2, 3, 4),
			container.New(10, 100),
		}

		res, diags, err := mapper.MapMulti(seqs, func(args ...any) (any, error) {
			return args[0].(int) * args[1].(int), nil
		}, false)
		require.NoError(t, err)

		assert.False(t, diags.HasWarnings())
		require.Equal(t, mapper.ResultList, res.Kind)
		assert.Equal(t, 4, res.List.Len())
		assert.Equal(t, 10, res.List.Value(0))
		assert.Equal(t, 200, res.List.Value(1))
		assert.Equal(t, 30, res.List.Value(2))
		assert.Equal(t, 400, res.List.Value(3))
	})

	t.Run("non-divisor length warns but continues", func(t *testing.T) {
		t.Parallel()

		seqs := []container.Sequence{
			container.New(1, 2, 3),
			container.New(10, 20),
		}

		res, diags, err := mapper.MapMulti(seqs, func(args ...any) (any, error) {
			return args[0].(int) + args[1].(int), nil
		}, true)
		require.NoError(t, err)

		require.True(t, diags.HasWarnings())
		assert.Equal(t, mapper.WarnRecycling, diags.Warnings[0].Code)
		assert.Equal(t, 1, diags.Warnings[0].Index)

		require.Equal(t, mapper.ResultVector, res.Kind)
		assert.Equal(t, []any{11, 22, 13}, res.Vector.Items())
	})
}

func TestMapMultiEmptyContainer(t *testing.T) {
	t.Parallel()

	seqs := []container.Sequence{
		container.New(1, 2, 3),
		container.New[int](),
	}

	res, diags, err := mapper.MapMulti(seqs, func(args ...any) (any, error) {
		t.Fatal("fn must not be invoked for an empty alignment")
		return nil, nil
	}, false)
	require.NoError(t, err)

	assert.False(t, diags.HasWarnings())
	require.Equal(t, mapper.ResultList, res.Kind)
	assert.Equal(t, 0, res.List.Len())
}

func TestMapMultiLabels(t *testing.T) {
	t.Parallel()

	unlabeled := container.New(1, 2, 3, 4)
	labeled, err := container.NewLabeled([]int{10, 20}, []string{"lo", "hi"})
	require.NoError(t, err)

	res, _, err := mapper.MapMulti([]container.Sequence{unlabeled, labeled}, func(args ...any) (any, error) {
		return args[0].(int) + args[1].(int), nil
	}, false)
	require.NoError(t, err)

	// labels come from the first labeled container and recycle with it
	assert.Equal(t, []string{"lo", "hi", "lo", "hi"}, res.List.Labels())
}

func TestMapMultiErrors(t *testing.T) {
	t.Parallel()

	t.Run("fn failure carries tuple index", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("bad tuple")
		_, _, err := mapper.MapMulti([]container.Sequence{container.New(1, 2, 3)}, func(args ...any) (any, error) {
			if args[0].(int) == 2 {
				return nil, boom
			}

			return args[0], nil
		}, false)

		var elemErr *mapper.ElementError
		require.ErrorAs(t, err, &elemErr)
		assert.Equal(t, 1, elemErr.Index)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("argument validation", func(t *testing.T) {
		t.Parallel()

		_, _, err := mapper.MapMulti(nil, func(args ...any) (any, error) { return nil, nil }, false)
		assert.ErrorIs(t, err, mapper.ErrNoContainers)

		_, _, err = mapper.MapMulti([]container.Sequence{nil}, func(args ...any) (any, error) { return nil, nil }, false)
		assert.ErrorIs(t, err, mapper.ErrNilContainer)

		_, _, err = mapper.MapMulti([]container.Sequence{container.New(1)}, nil, false)
		assert.ErrorIs(t, err, mapper.ErrNilFunc)
	})
}
