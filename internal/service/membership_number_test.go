package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticSource(numbers []string) MembershipNumberSource {
	return func(ctx context.Context, prefix string) ([]string, error) {
		return numbers, nil
	}
}

func TestMembershipNumberGenerator_FirstNumber(t *testing.T) {
	gen := NewMembershipNumberGenerator(staticSource(nil), MembershipNumberWidth)
	number, err := gen.Next(context.Background(), "M")
	require.NoError(t, err)
	assert.Equal(t, "M000001", number)
}

func TestMembershipNumberGenerator_Increments(t *testing.T) {
	gen := NewMembershipNumberGenerator(staticSource([]string{"V000041", "V000042", "V000007"}), MembershipNumberWidth)
	number, err := gen.Next(context.Background(), "V")
	require.NoError(t, err)
	assert.Equal(t, "V000043", number)
}

func TestMembershipNumberGenerator_NumericNotLexicographic(t *testing.T) {
	// "V0000100" sorts before "V000099" as a string but is the larger number.
	gen := NewMembershipNumberGenerator(staticSource([]string{"V000099", "V0000100"}), MembershipNumberWidth)
	number, err := gen.Next(context.Background(), "V")
	require.NoError(t, err)
	assert.Equal(t, "V000101", number)
}

func TestMembershipNumberGenerator_IgnoresMalformed(t *testing.T) {
	gen := NewMembershipNumberGenerator(staticSource([]string{"V00001a", "X000009", "V", "V000002"}), MembershipNumberWidth)
	number, err := gen.Next(context.Background(), "V")
	require.NoError(t, err)
	assert.Equal(t, "V000003", number)
}

func TestMembershipNumberGenerator_RegistryPrefix(t *testing.T) {
	gen := NewMembershipNumberGenerator(staticSource([]string{"MB00008"}), MembershipIDWidth)
	number, err := gen.Next(context.Background(), MembershipIDPrefix)
	require.NoError(t, err)
	assert.Equal(t, "MB00009", number)
}

func TestMembershipNumberGenerator_SourceError(t *testing.T) {
	gen := NewMembershipNumberGenerator(func(ctx context.Context, prefix string) ([]string, error) {
		return nil, errors.New("scan failed")
	}, MembershipNumberWidth)
	_, err := gen.Next(context.Background(), "M")
	require.Error(t, err)
}
