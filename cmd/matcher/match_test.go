package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func TestParseWeights(t *testing.T) {
	w, err := parseWeights("0.2,0.5,0.3")
	require.NoError(t, err)
	assert.Equal(t, types.WeightConfig{Personality: 0.2, Knowledge: 0.5, Skills: 0.3}, w)
}

func TestParseWeights_TrimsSpaces(t *testing.T) {
	w, err := parseWeights(" 0.7 , 0.2 , 0.1 ")
	require.NoError(t, err)
	assert.Equal(t, 0.7, w.Personality)
}

func TestParseWeights_Errors(t *testing.T) {
	cases := []string{"", "0.5,0.5", "0.2,0.3,0.4,0.1", "a,b,c"}
	for _, input := range cases {
		_, err := parseWeights(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestResolveTracks_Both(t *testing.T) {
	tracks, err := resolveTracks("both", "")
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, types.TrackCapability, tracks[0].Name)
	assert.Equal(t, types.TrackCompatibility, tracks[1].Name)

	defaulted, err := resolveTracks("", "")
	require.NoError(t, err)
	assert.Equal(t, tracks, defaulted)
}

func TestResolveTracks_SingleTracks(t *testing.T) {
	tracks, err := resolveTracks(types.TrackCapability, "")
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, types.TrackCapability, tracks[0].Name)

	tracks, err = resolveTracks(types.TrackCompatibility, "")
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, types.TrackCompatibility, tracks[0].Name)
}

func TestResolveTracks_Custom(t *testing.T) {
	tracks, err := resolveTracks("custom", "0.1,0.1,0.8")
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "custom", tracks[0].Name)
	assert.Equal(t, 0.8, tracks[0].Weights.Skills)
}

func TestResolveTracks_CustomRequiresWeights(t *testing.T) {
	_, err := resolveTracks("custom", "")
	assert.Error(t, err)
}

func TestResolveTracks_UnknownTrack(t *testing.T) {
	_, err := resolveTracks("happiness", "")
	assert.Error(t, err)
}
