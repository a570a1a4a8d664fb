package ovr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/ovr"
)

func TestExportLive(t *testing.T) {
	ctx, rt := session(t)
	rt.Chap.Live = `{"jsonid":"chaperone_info","version":5,"universes":[]}`
	chap := ctx.ChaperoneSetup()

	doc, ok := chap.ExportLiveToBuffer()
	require.True(t, ok)
	assert.Equal(t, rt.Chap.Live, doc)

	cfg, err := chap.ExportLive()
	require.NoError(t, err)
	assert.Equal(t, "chaperone_info", cfg["jsonid"])
	assert.Equal(t, float64(5), cfg["version"])
}

func TestExportLiveEmpty(t *testing.T) {
	ctx, rt := session(t)
	chap := ctx.ChaperoneSetup()
	_, ok := chap.ExportLiveToBuffer()
	assert.False(t, ok)
	assert.Equal(t, 1, rt.Chap.ExportCalls)

	_, err := chap.ExportLive()
	assert.ErrorIs(t, err, ovr.ErrNoChaperoneData)
}

func TestExportLiveBadJSON(t *testing.T) {
	ctx, rt := session(t)
	rt.Chap.Live = "{not json"
	_, err := ctx.ChaperoneSetup().ExportLive()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode chaperone export")
}

func TestWorkingCopy(t *testing.T) {
	ctx, rt := session(t)
	chap := ctx.ChaperoneSetup()

	_, ok := chap.WorkingStandingZeroPoseToRawTrackingPose()
	assert.False(t, ok)

	pose := ovr.Identity34
	pose[1][3] = 0.1
	chap.SetWorkingStandingZeroPoseToRawTrackingPose(pose)
	got, ok := chap.WorkingStandingZeroPoseToRawTrackingPose()
	require.True(t, ok)
	assert.Equal(t, pose, got)

	assert.False(t, chap.CommitWorkingCopy(ovr.ChaperoneConfigLive))
	rt.Chap.CommitOK = true
	assert.True(t, chap.CommitWorkingCopy(ovr.ChaperoneConfigLive))
	assert.Equal(t, []ovr.ChaperoneConfigFile{ovr.ChaperoneConfigLive}, rt.Chap.Committed)
}
