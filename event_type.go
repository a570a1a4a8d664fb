package ovr

import "strconv"

// EventType is the runtime's event discriminant.
type EventType uint32

const (
	EventNone EventType = 0

	EventTrackedDeviceActivated              EventType = 100
	EventTrackedDeviceDeactivated            EventType = 101
	EventTrackedDeviceUpdated                EventType = 102
	EventTrackedDeviceUserInteractionStarted EventType = 103
	EventTrackedDeviceUserInteractionEnded   EventType = 104
	EventIpdChanged                          EventType = 105
	EventEnterStandbyMode                    EventType = 106
	EventLeaveStandbyMode                    EventType = 107
	EventTrackedDeviceRoleChanged            EventType = 108
	EventWatchdogWakeUpRequested             EventType = 109
	EventLensDistortionChanged               EventType = 110
	EventPropertyChanged                     EventType = 111
	EventWirelessDisconnect                  EventType = 112
	EventWirelessReconnect                   EventType = 113

	EventButtonPress   EventType = 200
	EventButtonUnpress EventType = 201
	EventButtonTouch   EventType = 202
	EventButtonUntouch EventType = 203

	EventMouseMove           EventType = 300
	EventMouseButtonDown     EventType = 301
	EventMouseButtonUp       EventType = 302
	EventFocusEnter          EventType = 303
	EventFocusLeave          EventType = 304
	EventScrollDiscrete      EventType = 305
	EventTouchPadMove        EventType = 306
	EventOverlayFocusChanged EventType = 307
	EventReloadOverlays      EventType = 308
	EventScrollSmooth        EventType = 309

	EventSceneApplicationChanged EventType = 404

	EventQuit                EventType = 700
	EventProcessQuit         EventType = 701
	EventQuitAcknowledged    EventType = 703
	EventDriverRequestedQuit EventType = 704
	EventRestartRequested    EventType = 705

	EventChaperoneDataHasChanged      EventType = 800
	EventChaperoneUniverseHasChanged  EventType = 801
	EventChaperoneTempDataHasChanged  EventType = 802
	EventChaperoneSettingsHaveChanged EventType = 803
	EventSeatedZeroPoseReset          EventType = 804
	EventChaperoneFlushCache          EventType = 805
	EventChaperoneRoomSetupStarting   EventType = 806
	EventChaperoneRoomSetupFinished   EventType = 807

	EventInputHapticVibration            EventType = 1700
	EventInputBindingLoadFailed          EventType = 1701
	EventInputBindingLoadSuccessful      EventType = 1702
	EventInputActionManifestReloaded     EventType = 1703
	EventInputActionManifestLoadFailed   EventType = 1704
	EventInputProgressUpdate             EventType = 1705
	EventInputTrackerActivated           EventType = 1706
	EventInputBindingsUpdated            EventType = 1707
	EventInputBindingSubscriptionChanged EventType = 1708

	EventVendorSpecificReservedStart EventType = 10000
	EventVendorSpecificReservedEnd   EventType = 19999
)

var eventTypeNames = map[EventType]string{
	EventNone:                                "None",
	EventTrackedDeviceActivated:              "TrackedDeviceActivated",
	EventTrackedDeviceDeactivated:            "TrackedDeviceDeactivated",
	EventTrackedDeviceUpdated:                "TrackedDeviceUpdated",
	EventTrackedDeviceUserInteractionStarted: "TrackedDeviceUserInteractionStarted",
	EventTrackedDeviceUserInteractionEnded:   "TrackedDeviceUserInteractionEnded",
	EventIpdChanged:                          "IpdChanged",
	EventEnterStandbyMode:                    "EnterStandbyMode",
	EventLeaveStandbyMode:                    "LeaveStandbyMode",
	EventTrackedDeviceRoleChanged:            "TrackedDeviceRoleChanged",
	EventWatchdogWakeUpRequested:             "WatchdogWakeUpRequested",
	EventLensDistortionChanged:               "LensDistortionChanged",
	EventPropertyChanged:                     "PropertyChanged",
	EventWirelessDisconnect:                  "WirelessDisconnect",
	EventWirelessReconnect:                   "WirelessReconnect",
	EventButtonPress:                         "ButtonPress",
	EventButtonUnpress:                       "ButtonUnpress",
	EventButtonTouch:                         "ButtonTouch",
	EventButtonUntouch:                       "ButtonUntouch",
	EventMouseMove:                           "MouseMove",
	EventMouseButtonDown:                     "MouseButtonDown",
	EventMouseButtonUp:                       "MouseButtonUp",
	EventFocusEnter:                          "FocusEnter",
	EventFocusLeave:                          "FocusLeave",
	EventScrollDiscrete:                      "ScrollDiscrete",
	EventTouchPadMove:                        "TouchPadMove",
	EventOverlayFocusChanged:                 "OverlayFocusChanged",
	EventReloadOverlays:                      "ReloadOverlays",
	EventScrollSmooth:                        "ScrollSmooth",
	EventSceneApplicationChanged:             "SceneApplicationChanged",
	EventQuit:                                "Quit",
	EventProcessQuit:                         "ProcessQuit",
	EventQuitAcknowledged:                    "QuitAcknowledged",
	EventDriverRequestedQuit:                 "DriverRequestedQuit",
	EventRestartRequested:                    "RestartRequested",
	EventChaperoneDataHasChanged:             "ChaperoneDataHasChanged",
	EventChaperoneUniverseHasChanged:         "ChaperoneUniverseHasChanged",
	EventChaperoneTempDataHasChanged:         "ChaperoneTempDataHasChanged",
	EventChaperoneSettingsHaveChanged:        "ChaperoneSettingsHaveChanged",
	EventSeatedZeroPoseReset:                 "SeatedZeroPoseReset",
	EventChaperoneFlushCache:                 "ChaperoneFlushCache",
	EventChaperoneRoomSetupStarting:          "ChaperoneRoomSetupStarting",
	EventChaperoneRoomSetupFinished:          "ChaperoneRoomSetupFinished",
	EventInputHapticVibration:                "Input_HapticVibration",
	EventInputBindingLoadFailed:              "Input_BindingLoadFailed",
	EventInputBindingLoadSuccessful:          "Input_BindingLoadSuccessful",
	EventInputActionManifestReloaded:         "Input_ActionManifestReloaded",
	EventInputActionManifestLoadFailed:       "Input_ActionManifestLoadFailed",
	EventInputProgressUpdate:                 "Input_ProgressUpdate",
	EventInputTrackerActivated:               "Input_TrackerActivated",
	EventInputBindingsUpdated:                "Input_BindingsUpdated",
	EventInputBindingSubscriptionChanged:     "Input_BindingSubscriptionChanged",
}

// String returns the runtime's symbolic name, or EventType(n) for values
// this package has no name for.
func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	if t.IsVendorSpecific() {
		return "VendorSpecific(" + strconv.FormatUint(uint64(t), 10) + ")"
	}
	return "EventType(" + strconv.FormatUint(uint64(t), 10) + ")"
}

// IsVendorSpecific reports whether t lies in the range reserved for drivers.
func (t EventType) IsVendorSpecific() bool {
	return t >= EventVendorSpecificReservedStart && t <= EventVendorSpecificReservedEnd
}
