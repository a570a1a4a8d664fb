package ovr

import (
	"encoding/json"
	"errors"
	"fmt"
)

type ChaperoneConfigFile uint32

const (
	ChaperoneConfigLive ChaperoneConfigFile = 1
	ChaperoneConfigTemp ChaperoneConfigFile = 2
)

var ErrNoChaperoneData = errors.New("ovr: no live chaperone data")

// ChaperoneSetup edits the play-area configuration through a working copy
// that is committed back to the runtime.
type ChaperoneSetup struct {
	rt ChaperoneSetupRuntime
}

// ExportLiveToBuffer returns the live configuration document. ok is false
// when the runtime has nothing to export.
func (c *ChaperoneSetup) ExportLiveToBuffer() (doc string, ok bool) {
	var n uint32
	// a nil buffer only reports the length
	c.rt.ExportLiveToBuffer(nil, &n)
	if n == 0 {
		return "", false
	}
	buf := make([]byte, n)
	if !c.rt.ExportLiveToBuffer(buf, &n) {
		return "", false
	}
	return cString(buf), true
}

// ExportLive decodes the live configuration document.
func (c *ChaperoneSetup) ExportLive() (map[string]any, error) {
	doc, ok := c.ExportLiveToBuffer()
	if !ok {
		return nil, ErrNoChaperoneData
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(doc), &out); err != nil {
		return nil, fmt.Errorf("decode chaperone export: %w", err)
	}
	return out, nil
}

func (c *ChaperoneSetup) WorkingStandingZeroPoseToRawTrackingPose() (Matrix34, bool) {
	return c.rt.WorkingStandingZeroPoseToRawTrackingPose()
}

func (c *ChaperoneSetup) SetWorkingStandingZeroPoseToRawTrackingPose(m Matrix34) {
	c.rt.SetWorkingStandingZeroPoseToRawTrackingPose(m)
}

// CommitWorkingCopy saves the working copy to the given configuration.
func (c *ChaperoneSetup) CommitWorkingCopy(file ChaperoneConfigFile) bool {
	return c.rt.CommitWorkingCopy(file)
}
